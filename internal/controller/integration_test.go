package controller

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/aulaplan/internal/client"
	"github.com/akyairhashvil/aulaplan/internal/config"
	"github.com/akyairhashvil/aulaplan/internal/kv"
	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/selection"
	"github.com/akyairhashvil/aulaplan/internal/testutil"
)

func TestControllerAgainstBackend(t *testing.T) {
	backend := testutil.NewBackend(groupA, groupB)
	defer backend.Close()
	backend.Seed(testutil.NewWeek().WithID("10").WithNumber(1).Build())

	api, err := client.New(backend.BaseURL(), 2*time.Second)
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}
	ctx := context.Background()
	mem := kv.NewMemory()
	_ = mem.SetSetting(ctx, config.SettingSelectedGroup, "1")
	c := New(api, selection.NewStore(mem))

	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s := c.Snapshot(); len(s.Weeks) != 1 || s.NextWeekNumber != 2 {
		t.Fatalf("after start: %+v", s)
	}

	if err := c.CreateOrUpdateWeek(ctx, models.WeekPayload{WeekNumber: 2, CurricularUnit: "Math", Resources: "lab"}, false); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	s := c.Snapshot()
	if !s.HasWeek || s.Week.WeekNumber != 2 || s.Week.ID.IsZero() {
		t.Fatalf("after create: %+v", s.Week)
	}

	err = c.CreateOrUpdateWeek(ctx, models.WeekPayload{WeekNumber: 2}, false)
	if !client.IsValidation(err) {
		t.Fatalf("duplicate create = %v", err)
	}
	if got := client.UserMessage(err, "Erro ao salvar semana"); got != "Semana 2 já existe nesta turma" {
		t.Errorf("UserMessage = %q", got)
	}

	if err := c.ToggleCompleted(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if s := c.Snapshot(); !s.Week.Completed {
		t.Fatalf("week not completed: %+v", s.Week)
	}

	if err := c.DeleteWeek(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if s := c.Snapshot(); s.HasWeek || len(s.Weeks) != 1 {
		t.Fatalf("after delete: %+v", s)
	}
	if len(backend.Weeks()) != 1 {
		t.Fatalf("backend weeks = %v", backend.Weeks())
	}
}
