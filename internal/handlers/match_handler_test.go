package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polifund/grant-matcher/internal/models"
)

// stubMatcher returns a canned response or a forced error.
type stubMatcher struct {
	response *models.MatchingResponse
	err      error
	lastName string
}

func (s *stubMatcher) RunMatch(_ context.Context, profile *models.CompanyProfile) (*models.MatchingResponse, error) {
	s.lastName = profile.CompanyName
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubMatcher) ProcessRun(context.Context, uuid.UUID) error { return nil }

type stubRunRepo struct {
	created   []*models.MatchRun
	createErr error
	run       *models.MatchRun
	findErr   error
}

func (s *stubRunRepo) Create(run *models.MatchRun) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, run)
	return nil
}

func (s *stubRunRepo) FindByID(id uuid.UUID) (*models.MatchRun, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.run, nil
}

func (s *stubRunRepo) UpdateStatus(uuid.UUID, models.MatchRunStatus) error      { return nil }
func (s *stubRunRepo) UpdateResult(uuid.UUID, *models.MatchingResponse) error   { return nil }
func (s *stubRunRepo) UpdateError(uuid.UUID, string) error                      { return nil }
func (s *stubRunRepo) FindPendingRuns(int) ([]models.MatchRun, error)           { return nil, nil }

type stubWorker struct {
	enqueued []uuid.UUID
}

func (s *stubWorker) Start(context.Context)     {}
func (s *stubWorker) Stop()                     {}
func (s *stubWorker) EnqueueRun(runID uuid.UUID) { s.enqueued = append(s.enqueued, runID) }

func newMatchApp(matcher *stubMatcher, runRepo *stubRunRepo, w *stubWorker) *fiber.App {
	app := fiber.New()
	h := NewMatchHandler(matcher, runRepo, w)
	app.Post("/api/v1/match", h.HandleMatch)
	app.Post("/api/v1/match/runs", h.HandleCreateRun)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleMatchSyncHappyPath(t *testing.T) {
	matcher := &stubMatcher{response: &models.MatchingResponse{
		CompanyName: "테스트전자",
		MatchCount:  2,
	}}
	app := newMatchApp(matcher, &stubRunRepo{}, &stubWorker{})

	resp := postJSON(t, app, "/api/v1/match", `{
		"companyName": "테스트전자",
		"revenue": 400000000,
		"bizType": ["제조"],
		"items": ["전자부품"]
	}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "테스트전자", matcher.lastName)

	var body models.MatchingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.MatchCount)
}

func TestHandleMatchCoercesStringBizType(t *testing.T) {
	matcher := &stubMatcher{response: &models.MatchingResponse{}}
	app := newMatchApp(matcher, &stubRunRepo{}, &stubWorker{})

	resp := postJSON(t, app, "/api/v1/match", `{
		"companyName": "테스트전자",
		"revenue": 400000000,
		"bizType": "제조",
		"items": ["전자부품"]
	}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleMatchValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"companyName": `},
		{"missing companyName", `{"revenue": 1, "bizType": ["제조"], "items": ["전자부품"]}`},
		{"missing revenue", `{"companyName": "a", "bizType": ["제조"], "items": ["전자부품"]}`},
		{"empty bizType", `{"companyName": "a", "revenue": 1, "bizType": [], "items": ["전자부품"]}`},
		{"empty items", `{"companyName": "a", "revenue": 1, "bizType": ["제조"], "items": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newMatchApp(&stubMatcher{}, &stubRunRepo{}, &stubWorker{})
			resp := postJSON(t, app, "/api/v1/match", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHandleMatchServiceFailure(t *testing.T) {
	matcher := &stubMatcher{err: errors.New("db down")}
	app := newMatchApp(matcher, &stubRunRepo{}, &stubWorker{})

	resp := postJSON(t, app, "/api/v1/match", `{
		"companyName": "테스트전자",
		"revenue": 400000000,
		"bizType": ["제조"],
		"items": ["전자부품"]
	}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleCreateRunQueues(t *testing.T) {
	runRepo := &stubRunRepo{}
	w := &stubWorker{}
	app := newMatchApp(&stubMatcher{}, runRepo, w)

	resp := postJSON(t, app, "/api/v1/match/runs", `{
		"companyName": "테스트전자",
		"revenue": 400000000,
		"bizType": ["제조"],
		"items": ["전자부품"]
	}`)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body models.MatchRunResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(models.RunStatusQueued), body.Status)

	require.Len(t, runRepo.created, 1)
	created := runRepo.created[0]
	assert.Equal(t, body.ID, created.ID.String())
	assert.Equal(t, "테스트전자", created.CompanyName)
	assert.Equal(t, models.RunStatusQueued, created.Status)
	assert.Equal(t, []uuid.UUID{created.ID}, w.enqueued)
}

func TestHandleCreateRunRepositoryFailure(t *testing.T) {
	runRepo := &stubRunRepo{createErr: errors.New("insert failed")}
	w := &stubWorker{}
	app := newMatchApp(&stubMatcher{}, runRepo, w)

	resp := postJSON(t, app, "/api/v1/match/runs", `{
		"companyName": "테스트전자",
		"revenue": 400000000,
		"bizType": ["제조"],
		"items": ["전자부품"]
	}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, w.enqueued)
}

func newResultApp(runRepo *stubRunRepo) *fiber.App {
	app := fiber.New()
	h := NewResultHandler(runRepo)
	app.Get("/api/v1/match/runs/:id", h.HandleGetRun)
	return app
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestHandleGetRunInvalidID(t *testing.T) {
	resp := getPath(t, newResultApp(&stubRunRepo{}), "/api/v1/match/runs/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetRunNotFound(t *testing.T) {
	runRepo := &stubRunRepo{findErr: errors.New("match run not found")}
	resp := getPath(t, newResultApp(runRepo), "/api/v1/match/runs/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleGetRunCompleted(t *testing.T) {
	id := uuid.New()
	runRepo := &stubRunRepo{run: &models.MatchRun{
		ID:     id,
		Status: models.RunStatusCompleted,
		Result: &models.MatchingResponse{CompanyName: "테스트전자", MatchCount: 1},
	}}

	resp := getPath(t, newResultApp(runRepo), "/api/v1/match/runs/"+id.String())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.MatchRunResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, string(models.RunStatusCompleted), body.Status)
	require.NotNil(t, body.Result)
	assert.Equal(t, 1, body.Result.MatchCount)
	assert.Nil(t, body.ErrorMessage)
}

func TestHandleGetRunFailedCarriesError(t *testing.T) {
	id := uuid.New()
	msg := "failed to load announcements"
	runRepo := &stubRunRepo{run: &models.MatchRun{
		ID:           id,
		Status:       models.RunStatusFailed,
		ErrorMessage: &msg,
	}}

	resp := getPath(t, newResultApp(runRepo), "/api/v1/match/runs/"+id.String())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.MatchRunResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Result)
	require.NotNil(t, body.ErrorMessage)
	assert.Equal(t, msg, *body.ErrorMessage)
}
