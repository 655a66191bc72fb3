package controllers

import (
	"net/http"

	"shinmen-coffee/catalog"
	"shinmen-coffee/models"
	"shinmen-coffee/store"

	"github.com/gorilla/mux"
)

// MenuController serves the catalog and the session's menu filter
type MenuController struct {
	Sessions *store.Registry
}

// NewMenuController creates a new MenuController
func NewMenuController(sessions *store.Registry) *MenuController {
	return &MenuController{Sessions: sessions}
}

// MenuResponse is the filtered menu with its selection
type MenuResponse struct {
	Items            []models.CoffeeItem `json:"items"`
	SelectedCategory models.Category     `json:"selected_category"`
	SearchQuery      string              `json:"search_query"`
	NoResults        bool                `json:"no_results"`
}

// GetMenu filters the menu by ?category= and ?q=
func (mc *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, mc.Sessions)
	if !ok {
		return
	}
	category := models.Category(r.URL.Query().Get("category"))
	query := r.URL.Query().Get("q")

	items := s.FilterMenu(category, query)
	if category == "" {
		category = models.CategoryAll
	}
	writeJSON(w, http.StatusOK, MenuResponse{
		Items:            items,
		SelectedCategory: category,
		SearchQuery:      query,
		NoResults:        len(items) == 0,
	})
}

// GetCategories lists the menu tabs
func (mc *MenuController) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories())
}

// GetItem returns a single menu item
func (mc *MenuController) GetItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, mc.Sessions)
	if !ok {
		return
	}
	item, found := s.MenuItem(mux.Vars(r)["id"])
	if !found {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}
