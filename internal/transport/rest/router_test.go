package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parallelhearts/internal/model"
	"parallelhearts/internal/service"
	"parallelhearts/internal/transport/ws"
)

func newTestRouter() http.Handler {
	return NewRouter(&Container{
		AuthService:     service.NewAuthService("router-test-secret"),
		IntakeService:   service.NewIntakeService(nil, nil, nil, nil, nil),
		FightSimService: service.NewFightSimService(nil),
		WSHub:           ws.NewHub(),
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSessionCreate(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/sessions", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Token)
}

func TestRealmsArePublic(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/realms", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var realms []model.Realm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &realms))
	assert.Len(t, realms, 12)
}

func TestScenariosArePublic(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/simulations/scenarios", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/v1/quality", "/v1/analyses", "/v1/assessments", "/v1/simulations"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("POST", path, strings.NewReader("{}")))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestQualityCheckWithToken(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/sessions", nil))
	var sess model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))

	body := `{"conversation":"` + strings.Repeat("ab", 300) + `"}`
	req := httptest.NewRequest("POST", "/v1/quality", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result service.QualityResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, model.BadgeAdept, result.Tier.Badge)
	assert.Equal(t, 600, result.Metrics.CharCount)
	assert.Empty(t, result.Questions)
}

func TestQualityCheckTooShort(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/v1/sessions", nil))
	var sess model.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))

	req := httptest.NewRequest("POST", "/v1/quality", strings.NewReader(`{"conversation":"hey"}`))
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/v1/sessions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
