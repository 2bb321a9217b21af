package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"meetsense/internal/ai"
	"meetsense/internal/demo"
	"meetsense/internal/model"
	"meetsense/internal/settings"
	"meetsense/internal/storage"
	"meetsense/internal/utils"
)

var (
	analyzer      *ai.Analyzer
	settingsStore *settings.Store
)

// RegisterRoutes wires the API onto the gin engine. The analyzer and settings
// store are created once at startup and shared by every request.
func RegisterRoutes(r *gin.Engine, a *ai.Analyzer, s *settings.Store) {
	analyzer = a
	settingsStore = s

	// Health check
	r.GET("/health", healthCheck)

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", createSession)
		v1.GET("/sessions/:session_id", getSession)
		v1.POST("/sessions/:session_id/transcript", appendTranscript)
		v1.POST("/sessions/:session_id/demo", loadDemoTranscript)
		v1.POST("/sessions/:session_id/analyze", analyzeSession)
		v1.GET("/sessions/:session_id/analysis", getAnalysis)
		v1.GET("/settings", getSettings)
		v1.PUT("/settings", putSettings)
	}
}

// healthCheck returns server health status
func healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "meetsense-backend",
	})
}

// createSession starts a new meeting session
func createSession(c *gin.Context) {
	s := storage.CreateSession()
	log.Printf("[API] Session created: %s", s.ID)
	utils.Success(c, gin.H{
		"session_id": s.ID,
		"status":     s.Status,
		"created_at": s.CreatedAt,
	})
}

// getSession returns session info including its transcript
func getSession(c *gin.Context) {
	id := c.Param("session_id")
	s, ok := storage.GetSession(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "session not found")
		return
	}

	utils.Success(c, gin.H{
		"session_id": s.ID,
		"status":     s.Status,
		"created_at": s.CreatedAt,
		"transcript": s.Entries,
	})
}

// TranscriptRequest carries finalized utterances from the transcription layer.
type TranscriptRequest struct {
	Entries []model.TranscriptEntry `json:"entries" binding:"required"`
}

// appendTranscript appends finalized utterances to a session
func appendTranscript(c *gin.Context) {
	id := c.Param("session_id")

	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "entries is required")
		return
	}
	if len(req.Entries) == 0 {
		utils.Error(c, http.StatusBadRequest, "entries cannot be empty")
		return
	}

	if err := storage.AppendEntries(id, req.Entries); err != nil {
		utils.Error(c, http.StatusNotFound, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"session_id": id,
		"appended":   len(req.Entries),
	})
}

// loadDemoTranscript fills a session with the scripted demo meeting
func loadDemoTranscript(c *gin.Context) {
	id := c.Param("session_id")

	entries := demo.Transcript()
	if err := storage.AppendEntries(id, entries); err != nil {
		utils.Error(c, http.StatusNotFound, err.Error())
		return
	}

	log.Printf("[API] Demo transcript loaded into session %s (%d entries)", id, len(entries))
	utils.Success(c, gin.H{
		"session_id": id,
		"appended":   len(entries),
	})
}

// AnalyzeRequest carries the user's checklist for one analysis run.
type AnalyzeRequest struct {
	Checklist string `json:"checklist" binding:"required"`
}

// analyzeSession runs the analysis pipeline on a session's transcript
func analyzeSession(c *gin.Context) {
	id := c.Param("session_id")

	s, ok := storage.GetSession(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "session not found")
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "checklist is required")
		return
	}

	cfg, err := settingsStore.Load()
	if err != nil {
		log.Printf("[API] Failed to load settings: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to load settings: "+err.Error())
		return
	}

	storage.UpdateStatus(id, "analyzing")
	log.Printf("[API] Analyzing session %s with provider %s", id, cfg.Provider)

	result, err := analyzer.AnalyzeTranscript(c.Request.Context(), s.Entries, req.Checklist, cfg)
	if err != nil {
		storage.UpdateStatus(id, "failed")
		utils.Error(c, analysisErrorStatus(err), err.Error())
		return
	}

	storage.SaveAnalysis(id, result)
	storage.UpdateStatus(id, "analyzed")
	log.Printf("[API] Analysis saved for session %s", id)

	utils.Success(c, gin.H{
		"session_id": id,
		"analysis":   result,
	})
}

// analysisErrorStatus maps pipeline error kinds to HTTP status codes: caller
// mistakes are 400s, backend faults are 502s.
func analysisErrorStatus(err error) int {
	var (
		cfgErr      *ai.ConfigurationError
		unsupported *ai.UnsupportedProviderError
	)
	switch {
	case errors.Is(err, ai.ErrEmptyTranscript), errors.Is(err, ai.ErrEmptyChecklist):
		return http.StatusBadRequest
	case errors.As(err, &cfgErr), errors.As(err, &unsupported):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// getAnalysis retrieves the stored analysis result for a session
func getAnalysis(c *gin.Context) {
	id := c.Param("session_id")

	result, ok := storage.GetAnalysis(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "analysis not found. Please analyze the session first")
		return
	}

	utils.Success(c, gin.H{
		"session_id": id,
		"analysis":   result,
	})
}

// getSettings returns the current provider settings
func getSettings(c *gin.Context) {
	cfg, err := settingsStore.Load()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.Success(c, gin.H{"settings": cfg})
}

// putSettings saves provider settings
func putSettings(c *gin.Context) {
	var cfg model.ProviderSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid settings payload: "+err.Error())
		return
	}

	if !model.KnownProvider(cfg.Provider) {
		utils.Error(c, http.StatusBadRequest, "unsupported provider: "+cfg.Provider)
		return
	}

	if err := settingsStore.Save(cfg); err != nil {
		log.Printf("[API] Failed to save settings: %v", err)
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("[API] Settings saved (provider: %s)", cfg.Provider)
	utils.Success(c, gin.H{"settings": cfg})
}
