package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hnakamura/kabuto/internal/models"
)

type analyzeRequest struct {
	Assets json.RawMessage   `json:"assets"`
	News   []models.NewsItem `json:"news"`
}

// handleAnalyze handles POST /api/analyze. Returns either a full report or
// an error, never a partial result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req analyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if len(req.Assets) == 0 || string(req.Assets) == "null" {
		WriteError(w, http.StatusBadRequest, "assets is required")
		return
	}
	var assets []models.Asset
	if err := json.Unmarshal(req.Assets, &assets); err != nil {
		WriteError(w, http.StatusBadRequest, "assets must be a list")
		return
	}

	for i, a := range assets {
		form := models.AssetForm{
			Name:         a.Name,
			Ticker:       a.Ticker,
			Sector:       a.Sector,
			Currency:     a.Currency,
			Quantity:     a.Quantity,
			AverageCost:  a.AverageCost,
			CurrentPrice: a.CurrentPrice,
		}
		if err := form.Validate(s.app.Rates.Knows); err != nil {
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("asset %d: %s", i, err.Error()))
			return
		}
	}

	analysis, isMock, err := s.app.AdvisorService.Analyze(r.Context(), assets, req.News)
	if err != nil {
		s.logger.Error().Err(err).Int("assets", len(assets)).Msg("Analysis failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Data: analysis, IsMock: isMock})
}
