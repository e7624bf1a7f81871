package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meur/rulesview/internal/render"
	"github.com/meur/rulesview/internal/view"
	"go.uber.org/zap"
)

// handleIndex shows the armies tab with the first army selected
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderArmies(w, "")
}

// handleArmies shows the armies tab, ?army= selects the army
func (s *Server) handleArmies(w http.ResponseWriter, r *http.Request) {
	s.renderArmies(w, r.URL.Query().Get("army"))
}

// handleArmy shows one army
func (s *Server) handleArmy(w http.ResponseWriter, r *http.Request) {
	s.renderArmies(w, chi.URLParam(r, "army"))
}

func (s *Server) renderArmies(w http.ResponseWriter, selected string) {
	status := http.StatusOK
	data := render.ArmiesPage{Index: view.BuildArmyIndex(s.catalog, selected)}

	if data.Index.Message == "" {
		army, msg, ok := view.BuildArmy(s.catalog, data.Index.Selected)
		if ok {
			data.Army = &army
		} else {
			data.Message = msg
			status = http.StatusNotFound
		}
	}

	s.renderPage(w, status, render.PageArmies, "Armies", data)
}

func (s *Server) handleRegiments(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, render.PageRegiments, "Regiments of Renown", view.BuildRegiments(s.catalog))
}

func (s *Server) handleManifestations(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, render.PageManifestations, "Universal Manifestations", view.BuildManifestations(s.catalog))
}

func (s *Server) handleFAQ(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, render.PageFAQ, "FAQ", view.BuildFAQ(s.catalog.FAQ()))
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page, title string, data interface{}) {
	var buf bytes.Buffer
	err := s.renderer.Render(&buf, page, render.Page{
		Title: title,
		Info:  view.BuildDataInfo(s.catalog),
		Data:  data,
	})
	if err != nil {
		s.logger.Error("Failed to render page", zap.String("page", page), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
