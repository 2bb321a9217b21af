package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetsense/internal/ai"
	"meetsense/internal/model"
	"meetsense/internal/settings"
)

// newTestRouter wires the API against a stub Ollama backend so handler tests
// exercise the real pipeline without leaving the process.
func newTestRouter(t *testing.T, ollamaURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, store.Save(model.ProviderSettings{
		Provider:    model.ProviderOllama,
		OllamaURL:   ollamaURL,
		OllamaModel: "llama3.1",
	}))

	r := gin.New()
	RegisterRoutes(r, ai.NewAnalyzer("test-key", &http.Client{}), store)
	return r
}

func newStubOllama(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":{"content":"{\"summary\":\"Discussed scalability\",\"actionItems\":[],\"missingPoints\":[]}"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			SessionID string `json:"session_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.SessionID)
	return resp.Data.SessionID
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t, "http://unused")

	w := doJSON(r, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "meetsense-backend")
}

func TestSessionNotFound(t *testing.T) {
	r := newTestRouter(t, "http://unused")

	w := doJSON(r, http.MethodGet, "/api/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppendAndGetTranscript(t *testing.T) {
	r := newTestRouter(t, "http://unused")
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/transcript", gin.H{
		"entries": []model.TranscriptEntry{
			{Timestamp: "00:02.150", Speaker: "Speaker 1", Text: "Let's discuss scalability."},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Let's discuss scalability.")
}

func TestAppendTranscriptRejectsEmpty(t *testing.T) {
	r := newTestRouter(t, "http://unused")
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/transcript", gin.H{"entries": []model.TranscriptEntry{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadDemoTranscript(t *testing.T) {
	r := newTestRouter(t, "http://unused")
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/demo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Contains(t, w.Body.String(), "scalability")
}

func TestAnalyzeSession(t *testing.T) {
	srv := newStubOllama(t)
	r := newTestRouter(t, srv.URL)
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/demo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/analyze", gin.H{"checklist": "- Scalability"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Discussed scalability")

	// Stored result is retrievable afterwards
	w = doJSON(r, http.MethodGet, "/api/v1/sessions/"+id+"/analysis", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Discussed scalability")

	// Session reflects the completed analysis
	w = doJSON(r, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Contains(t, w.Body.String(), `"analyzed"`)
}

func TestAnalyzeSessionEmptyTranscript(t *testing.T) {
	srv := newStubOllama(t)
	r := newTestRouter(t, srv.URL)
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/analyze", gin.H{"checklist": "- Scalability"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeSessionMissingChecklist(t *testing.T) {
	r := newTestRouter(t, "http://unused")
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/analyze", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeSessionBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := newTestRouter(t, srv.URL)
	id := createTestSession(t, r)
	doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/demo", nil)

	w := doJSON(r, http.MethodPost, "/api/v1/sessions/"+id+"/analyze", gin.H{"checklist": "- Scalability"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "analysis failed for provider ollama")
}

func TestGetAnalysisNotFound(t *testing.T) {
	r := newTestRouter(t, "http://unused")
	id := createTestSession(t, r)

	w := doJSON(r, http.MethodGet, "/api/v1/sessions/"+id+"/analysis", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	r := newTestRouter(t, "http://unused")

	w := doJSON(r, http.MethodPut, "/api/v1/settings", model.ProviderSettings{
		Provider:    model.ProviderLMStudio,
		LMStudioURL: "http://localhost:1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.ProviderLMStudio)
}

func TestSettingsRejectUnknownProvider(t *testing.T) {
	r := newTestRouter(t, "http://unused")

	w := doJSON(r, http.MethodPut, "/api/v1/settings", gin.H{"provider": "carrier-pigeon"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
