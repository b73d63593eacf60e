package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator"
)

// ID is an opaque backend identifier. The backend may emit it as a JSON number
// or string; both decode to the same textual form.
type ID string

// NoID is the zero identifier.
const NoID ID = ""

func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id == NoID }

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = NoID
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: unsupported token %s", string(data))
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integer-looking identifiers back as numbers so they round
// trip against backends with integer primary keys.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.isInteger() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) isInteger() bool {
	s := string(id)
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// Group is a classroom cohort ("turma"). The client reflects Closed but never sets it.
type Group struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
}

// Week is one weekly lesson plan scoped to a group.
type Week struct {
	ID             ID     `json:"id"`
	GroupID        ID     `json:"group_id"`
	WeekNumber     int    `json:"semana"`
	CurricularUnit string `json:"unidadeCurricular"`
	Activities     string `json:"atividades"`
	Capabilities   string `json:"capacidades"`
	Knowledge      string `json:"conhecimentos"`
	Resources      string `json:"recursos"` // comma separated
	Completed      bool   `json:"concluida"`
}

// Field limits for week payloads. The validate tags below repeat them.
const (
	MaxUnitLength      = 200
	MaxResourcesLength = 500
	MaxTextLength      = 4000
)

// ErrInvalidWeek wraps every payload validation failure.
var ErrInvalidWeek = errors.New("invalid week")

var payloadValidator = validator.New()

// WeekPayload is the body of create and update requests. WeekNumber is
// omitted on update because it is immutable once created.
type WeekPayload struct {
	GroupID        ID     `json:"group_id" validate:"required"`
	WeekNumber     int    `json:"semana,omitempty" validate:"omitempty,gt=0"`
	CurricularUnit string `json:"unidadeCurricular" validate:"max=200"`
	Activities     string `json:"atividades" validate:"max=4000"`
	Capabilities   string `json:"capacidades" validate:"max=4000"`
	Knowledge      string `json:"conhecimentos" validate:"max=4000"`
	Resources      string `json:"recursos" validate:"max=500"`
	Completed      bool   `json:"concluida"`
}

// Validate checks p before it is sent. A create must carry a week number;
// an update may omit it.
func (p WeekPayload) Validate(create bool) error {
	if create && p.WeekNumber <= 0 {
		return fmt.Errorf("%w: week number must be positive", ErrInvalidWeek)
	}
	if err := payloadValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWeek, err)
	}
	return nil
}

// Payload returns the editable fields of w as a request body.
func (w Week) Payload() WeekPayload {
	return WeekPayload{
		GroupID:        w.GroupID,
		WeekNumber:     w.WeekNumber,
		CurricularUnit: w.CurricularUnit,
		Activities:     w.Activities,
		Capabilities:   w.Capabilities,
		Knowledge:      w.Knowledge,
		Resources:      w.Resources,
		Completed:      w.Completed,
	}
}

// Label is the fixed-language caption used in lists and in search.
func (w Week) Label() string {
	return fmt.Sprintf("semana %d", w.WeekNumber)
}

// AnyOption is the filter value meaning "no restriction".
const AnyOption = "any"

// FilterState is the transient search/filter selection of the view.
type FilterState struct {
	SearchText     string
	UnitFilter     string
	ResourceFilter string
}

// IsZero reports whether the filter matches everything.
func (f FilterState) IsZero() bool {
	return f.SearchText == "" && isAny(f.UnitFilter) && isAny(f.ResourceFilter)
}

// UnitActive reports whether a unit restriction applies.
func (f FilterState) UnitActive() bool { return !isAny(f.UnitFilter) }

// ResourceActive reports whether a resource restriction applies.
func (f FilterState) ResourceActive() bool { return !isAny(f.ResourceFilter) }

func isAny(v string) bool {
	return v == "" || v == AnyOption
}
