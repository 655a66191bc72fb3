package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"shinmen-coffee/models"
	"shinmen-coffee/store"
)

// UIController exposes the page's panel flags and animation queue
type UIController struct {
	Sessions *store.Registry
}

func NewUIController(sessions *store.Registry) *UIController {
	return &UIController{Sessions: sessions}
}

type uiResponse struct {
	UI         models.UIState        `json:"ui"`
	Animations models.AnimationState `json:"animations"`
}

func (uc *UIController) GetUI(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	st := s.State()
	writeJSON(w, http.StatusOK, uiResponse{UI: st.UI, Animations: st.Animations})
}

func (uc *UIController) UpdateUI(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	var update models.UIUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.SetUIState(update))
}

func (uc *UIController) UpdateAnimations(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	var update models.AnimationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := s.SetAnimationState(update); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.State().Animations)
}

func (uc *UIController) QueueAnimation(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	var req struct {
		Animation string `json:"animation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Animation) == "" {
		http.Error(w, "Animation name is required", http.StatusBadRequest)
		return
	}
	s.QueueAnimation(req.Animation)
	writeJSON(w, http.StatusOK, s.State().Animations)
}
