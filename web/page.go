// Package web renders the marketing page from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"shinmen-coffee/catalog"
	"shinmen-coffee/middleware"
	"shinmen-coffee/models"
	"shinmen-coffee/store"
)

//go:embed templates
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html.tmpl").
		Funcs(template.FuncMap{
			"price": formatPrice,
			"lines": func(s string) []string { return strings.Split(s, "\n") },
		}).
		ParseFS(templatesFS, "templates/*.tmpl"),
)

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// PageData is everything the page template renders
type PageData struct {
	Title            string
	Categories       []catalog.CategoryInfo
	SelectedCategory models.Category
	SearchQuery      string
	Items            []models.CoffeeItem
	NoResults        bool
	CartItemCount    int
	CartTotal        float64
	User             *models.UserProfile
	Achievements     []models.Achievement
	Features         []Feature
	Stats            []Stat
	Experiences      []Experience
	ContactInfo      []ContactInfo
	SocialLinks      []SocialLink
	Year             int
}

// PageHandler renders the single-page site for the request's session
type PageHandler struct {
	Sessions *store.Registry
}

func NewPageHandler(sessions *store.Registry) *PageHandler {
	return &PageHandler{Sessions: sessions}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionID(r.Context())
	if !ok {
		http.Error(w, "Session missing", http.StatusBadRequest)
		return
	}
	s, err := h.Sessions.Session(r.Context(), id)
	if err != nil {
		log.Printf("load session %s: %v", id, err)
		http.Error(w, "Could not load session", http.StatusInternalServerError)
		return
	}

	category := models.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = models.CategoryAll
	}
	query := r.URL.Query().Get("q")
	items := s.FilterMenu(category, query)
	st := s.State()

	data := PageData{
		Title:            "Shinmen Coffee - Premium Coffee Experience",
		Categories:       catalog.Categories(),
		SelectedCategory: category,
		SearchQuery:      query,
		Items:            items,
		NoResults:        len(items) == 0,
		CartItemCount:    st.CartItemCount,
		CartTotal:        st.CartTotal,
		User:             st.User,
		Achievements:     store.Achievements(),
		Features:         features,
		Stats:            stats,
		Experiences:      experiences,
		ContactInfo:      contactInfo,
		SocialLinks:      socialLinks,
		Year:             time.Now().Year(),
	}
	if st.User != nil && len(st.User.Achievements) > 0 {
		data.Achievements = st.User.Achievements
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, "Could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
