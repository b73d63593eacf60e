package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/akyairhashvil/aulaplan/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL, 2*time.Second)
	require.NoError(t, err)
	return c
}

func TestListGroupsAndWeeks(t *testing.T) {
	backend := testutil.NewBackend(
		testutil.NewGroup().WithID("1").WithName("Turma A").Build(),
		testutil.NewGroup().WithID("2").WithName("Turma B").Closed().Build(),
	)
	defer backend.Close()
	backend.Seed(
		testutil.NewWeek().WithID("10").WithGroup("1").WithNumber(1).WithUnit("Math").Build(),
		testutil.NewWeek().WithID("20").WithGroup("2").WithNumber(1).Build(),
		testutil.NewWeek().WithID("11").WithGroup("1").WithNumber(2).Build(),
	)
	c := newTestClient(t, backend.BaseURL())
	ctx := context.Background()

	groups, err := c.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Turma A", groups[0].Name)
	assert.True(t, groups[1].Closed)

	weeks, err := c.ListWeeks(ctx, "1")
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, models.ID("10"), weeks[0].ID)
	assert.Equal(t, models.ID("11"), weeks[1].ID)
	assert.Equal(t, "Math", weeks[0].CurricularUnit)
}

func TestListWeeksEmptyGroupIsNotNil(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	c := newTestClient(t, backend.BaseURL())

	weeks, err := c.ListWeeks(context.Background(), "99")
	require.NoError(t, err)
	assert.NotNil(t, weeks)
	assert.Empty(t, weeks)
}

func TestCreateUpdateDeleteWeek(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	c := newTestClient(t, backend.BaseURL())
	ctx := context.Background()

	created, err := c.CreateWeek(ctx, models.WeekPayload{GroupID: "1", WeekNumber: 2, CurricularUnit: "Math", Resources: "lab"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, 2, created.WeekNumber)

	updated, err := c.UpdateWeek(ctx, created.ID, models.WeekPayload{GroupID: "1", WeekNumber: 7, Activities: "Lab day", Resources: "lab"})
	require.NoError(t, err)
	assert.Equal(t, "Lab day", updated.Activities)
	assert.Equal(t, 2, updated.WeekNumber, "week number must not change on update")

	require.NoError(t, c.DeleteWeek(ctx, created.ID))
	assert.Empty(t, backend.Weeks())
}

func TestCreateDuplicateIsValidationError(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Seed(testutil.NewWeek().WithID("10").WithGroup("1").WithNumber(1).Build())
	c := newTestClient(t, backend.BaseURL())

	_, err := c.CreateWeek(context.Background(), models.WeekPayload{GroupID: "1", WeekNumber: 1})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, http.StatusConflict, ve.Status)
	assert.Contains(t, ve.Message, "já existe")
	assert.Equal(t, ve.Message, UserMessage(err, "Erro ao salvar semana"))

	var op *OpError
	require.True(t, errors.As(err, &op))
	assert.Equal(t, "create", op.Op)
	assert.Equal(t, "week", op.Resource)
}

func TestEmptyFailureIsServerError(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	c := newTestClient(t, backend.BaseURL())

	backend.FailNext = http.StatusInternalServerError
	err := c.DeleteWeek(context.Background(), "10")
	require.Error(t, err)
	assert.True(t, IsServer(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "Erro ao excluir semana", UserMessage(err, "Erro ao excluir semana"))
}

func TestNonJSONFailureIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.ListGroups(context.Background())
	require.Error(t, err)
	var se *ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Status)
}

func TestMalformedSuccessIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	_, err := c.ListGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestConnectionRefusedIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	c := newTestClient(t, base)

	_, err := c.ListWeeks(context.Background(), "1")
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := New(srv.URL, 50*time.Millisecond)
	require.NoError(t, err)
	_, err = c.ListGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestRequestsCarryRequestID(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	c := newTestClient(t, backend.BaseURL())

	_, err := c.ListGroups(context.Background())
	require.NoError(t, err)
	ids := backend.RequestIDs()
	require.Len(t, ids, 1)
	_, perr := uuid.Parse(ids[0])
	assert.NoError(t, perr)
}

func TestExportURLAndDownload(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	c := newTestClient(t, backend.BaseURL())

	assert.Equal(t, backend.BaseURL()+"/export/pdf?group_id=7", c.ExportURL(ExportPDF, "7"))

	var buf bytes.Buffer
	n, err := c.DownloadExport(context.Background(), ExportPDF, "7", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	_, err = c.DownloadExport(context.Background(), ExportKind("csv"), "7", &buf)
	assert.Error(t, err)
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("/api", time.Second)
	assert.Error(t, err)
}

func TestWithHTTPClient(t *testing.T) {
	backend := testutil.NewBackend(testutil.NewGroup().Build())
	defer backend.Close()

	hc := backend.Client()
	c, err := New(backend.BaseURL(), time.Nanosecond, WithHTTPClient(hc))
	require.NoError(t, err)

	groups, err := c.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}
