package web

import (
	"net/http"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// productsResponse is one page of products with display fields.
type productsResponse struct {
	Items      []core.ProductView `json:"items"`
	TotalCount int                `json:"totalCount"`
	TotalPages int                `json:"totalPages"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	First      int                `json:"first"`
	Last       int                `json:"last"`
	Source     core.Source        `json:"source"`
}

// handleListProducts serves GET /api/products.
//
// Query parameters: q, category, company, page, pageSize, and the prev_*
// variants of the filters (see browseParams).
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	c, page := browseParams(r)
	pageSize := min(parseIntParam(r, "pageSize", core.DefaultPageSize), maxAPIPageSize)

	res := s.service.Browse(r.Context(), c, page, pageSize)
	writeJSON(w, r, http.StatusOK, productsResponse{
		Items:      core.Views(res.Page.Items),
		TotalCount: res.Page.TotalCount,
		TotalPages: res.Page.TotalPages,
		Page:       res.Page.Page,
		PageSize:   res.Page.PageSize,
		First:      res.Page.First,
		Last:       res.Page.Last,
		Source:     res.Source,
	})
}

// handleListCategories serves the fixed taxonomy in display order.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string][]string{"categories": core.Categories()})
}

// handleListCompanies serves the distinct companies of the current catalog.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	snap := s.service.Catalog(r.Context())
	writeJSON(w, r, http.StatusOK, map[string][]string{"companies": core.Companies(snap.Products)})
}

// handleStatus serves storage readiness and catalog size.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.service.Status(r.Context()))
}
