package web

import (
	"net/http"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/logging"
	"github.com/JonMunkholm/pharmacatalog/internal/web/templates"
)

// handleCatalogPage renders the public catalog with filters and pager.
func (s *Server) handleCatalogPage(w http.ResponseWriter, r *http.Request) {
	c, page := browseParams(r)
	res := s.service.Browse(r.Context(), c, page, core.DefaultPageSize)

	data := templates.CatalogData{
		Criteria:   c,
		Page:       res.Page,
		Products:   core.Views(res.Page.Items),
		Categories: core.Categories(),
		Companies:  res.Companies,
		Source:     res.Source,
		Window:     core.PageWindow(res.Page.Page, res.Page.TotalPages),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.CatalogPage(data).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render catalog page", "error", err)
	}
}

// handleAdminPage renders the operator upload form. The form itself is
// public; the upload endpoint checks the password.
func (s *Server) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	data := templates.AdminData{
		PrimaryReady: s.service.IsPrimaryReady(),
		WriteTarget:  s.service.Status(r.Context()).WriteTarget,
		MaxFileSize:  s.cfg.Upload.MaxFileSize,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.AdminPage(data).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render admin page", "error", err)
	}
}

// handleHealth reports liveness and whether a primary store is configured.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":       "ok",
		"primaryReady": s.service.IsPrimaryReady(),
	})
}
