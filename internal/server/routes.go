package server

import (
	"net/http"

	"github.com/hnakamura/kabuto/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Assets
	mux.HandleFunc("/api/assets/", s.routeAsset)
	mux.HandleFunc("/api/assets", s.routeAssets)

	// Portfolio
	mux.HandleFunc("/api/portfolio/summary", s.handlePortfolioSummary)
	mux.HandleFunc("/api/portfolio/chart", s.handlePortfolioChart)

	// Analysis & market surfaces
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/institutional", s.handleInstitutional)
	mux.HandleFunc("/api/news", s.handleNews)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	status := map[string]interface{}{
		"status":         "ok",
		"store_degraded": s.app.StoreDegraded,
	}
	WriteJSON(w, http.StatusOK, status)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
