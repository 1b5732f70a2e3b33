package server

import (
	"errors"
	"net/http"

	"github.com/hnakamura/kabuto/internal/interfaces"
	"github.com/hnakamura/kabuto/internal/models"
)

// routeAssets handles /api/assets (list, create).
func (s *Server) routeAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleAssetList(w, r)
	case http.MethodPost:
		s.handleAssetCreate(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// routeAsset handles /api/assets/{id} (get, update, delete).
func (s *Server) routeAsset(w http.ResponseWriter, r *http.Request) {
	id := PathParam(r, "/api/assets/", "")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Asset id is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.handleAssetGet(w, r, id)
	case http.MethodPut:
		s.handleAssetUpdate(w, r, id)
	case http.MethodDelete:
		s.handleAssetDelete(w, r, id)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (s *Server) handleAssetList(w http.ResponseWriter, r *http.Request) {
	assets, err := s.app.Store.List(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list assets")
		WriteError(w, http.StatusInternalServerError, "Failed to list assets")
		return
	}
	WriteData(w, http.StatusOK, assets)
}

func (s *Server) handleAssetCreate(w http.ResponseWriter, r *http.Request) {
	var form models.AssetForm
	if !DecodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(s.app.Rates.Knows); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := s.app.Store.Create(r.Context(), form)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create asset")
		WriteError(w, http.StatusInternalServerError, "Failed to create asset")
		return
	}
	WriteData(w, http.StatusCreated, asset)
}

func (s *Server) handleAssetGet(w http.ResponseWriter, r *http.Request, id string) {
	asset, err := s.app.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrAssetNotFound) {
			WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to get asset")
		WriteError(w, http.StatusInternalServerError, "Failed to get asset")
		return
	}
	WriteData(w, http.StatusOK, asset)
}

func (s *Server) handleAssetUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var form models.AssetForm
	if !DecodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(s.app.Rates.Knows); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := s.app.Store.Update(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, interfaces.ErrAssetNotFound) {
			WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to update asset")
		WriteError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}
	WriteData(w, http.StatusOK, asset)
}

func (s *Server) handleAssetDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.app.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, interfaces.ErrAssetNotFound) {
			WriteError(w, http.StatusNotFound, "Asset not found")
			return
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete asset")
		WriteError(w, http.StatusInternalServerError, "Failed to delete asset")
		return
	}
	WriteJSON(w, http.StatusOK, Response{Success: true})
}
