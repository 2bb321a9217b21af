package storage

import (
	"sync"

	"meetsense/internal/model"
)

var (
	analyses   = make(map[string]*model.AnalysisResult)
	muAnalysis sync.Mutex
)

// SaveAnalysis saves the analysis result for a session. The previous result,
// if any, is replaced wholesale.
func SaveAnalysis(sessionID string, result *model.AnalysisResult) {
	muAnalysis.Lock()
	defer muAnalysis.Unlock()
	analyses[sessionID] = result
}

// GetAnalysis retrieves the analysis result for a session
func GetAnalysis(sessionID string) (*model.AnalysisResult, bool) {
	muAnalysis.Lock()
	defer muAnalysis.Unlock()
	result, ok := analyses[sessionID]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	cp := *result
	cp.ActionItems = append([]model.ActionItem(nil), result.ActionItems...)
	cp.MissingPoints = append([]model.MissingPoint(nil), result.MissingPoints...)
	return &cp, true
}
