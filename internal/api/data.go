package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meur/rulesview/internal/view"
)

// InfoResponse describes the loaded datasets
type InfoResponse struct {
	Revision       string         `json:"revision"`
	LoadedAt       time.Time      `json:"loaded_at"`
	BattleProfiles *view.DataInfo `json:"battle_profiles"`
	FAQ            *view.DataInfo `json:"faq"`
}

func (s *Server) handleGetInfo(w http.ResponseWriter, r *http.Request) {
	resp := InfoResponse{
		Revision:       s.catalog.Revision(),
		LoadedAt:       s.catalog.LoadedAt(),
		BattleProfiles: view.BuildDataInfo(s.catalog),
	}
	if faq := s.catalog.FAQ(); faq != nil {
		md := faq.Metadata
		resp.FAQ = &view.DataInfo{
			Title:         md.Title,
			Filename:      md.Filename,
			PublishedDate: md.PublishedDate,
			ExtractedDate: md.ExtractedDate,
			Hash:          md.Hash,
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// handleGetArmies lists the army names
func (s *Server) handleGetArmies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, view.BuildArmyIndex(s.catalog, r.URL.Query().Get("army")))
}

// handleGetArmy returns the assembled view of one army
func (s *Server) handleGetArmy(w http.ResponseWriter, r *http.Request) {
	army, msg, ok := view.BuildArmy(s.catalog, chi.URLParam(r, "army"))
	if !ok {
		respondError(w, http.StatusNotFound, msg)
		return
	}
	respondJSON(w, http.StatusOK, army)
}

func (s *Server) handleGetRegiments(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, view.BuildRegiments(s.catalog))
}

func (s *Server) handleGetManifestations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, view.BuildManifestations(s.catalog))
}

func (s *Server) handleGetFAQ(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, view.BuildFAQ(s.catalog.FAQ()))
}
