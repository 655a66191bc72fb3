package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"shinmen-coffee/middleware"
	"shinmen-coffee/models"
	"shinmen-coffee/storage"
	"shinmen-coffee/store"
	"shinmen-coffee/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserController handles user-related requests
type UserController struct {
	Users    storage.UserRepository
	Sessions *store.Registry
}

// NewUserController creates a new UserController
func NewUserController(users storage.UserRepository, sessions *store.Registry) *UserController {
	return &UserController{
		Users:    users,
		Sessions: sessions,
	}
}

// RegisterRequest creates an account
type RegisterRequest struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Password    string             `json:"password"`
	Preferences models.Preferences `json:"preferences"`
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		http.Error(w, "Name, email and a password of at least 8 characters are required", http.StatusBadRequest)
		return
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user, err := uc.Users.CreateUser(r.Context(), models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashedPassword),
		Preferences: req.Preferences,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		http.Error(w, "User already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("create user: %v", err)
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and signs the profile into the session
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	user, err := uc.Users.FindUserByEmail(r.Context(), creds.Email)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Printf("find user: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	// Compare the hashed password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	// Keep loyalty and history when the same account signs in again
	profile := user.Profile()
	if current := s.State().User; current != nil && current.ID == profile.ID {
		profile = *current
		profile.Preferences = user.Preferences
	}
	s.SetUser(profile)

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": profile})
}

// Logout signs the session out and empties its cart
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	s.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetProfile retrieves the authenticated user's profile
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}

	if current := s.State().User; current != nil && current.ID == claims.UserID {
		writeJSON(w, http.StatusOK, current)
		return
	}

	user, err := uc.Users.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, user.Profile())
}

// UpdatePreferences replaces the authenticated user's preferences
func (uc *UserController) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}

	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	switch prefs.CaffeineSensitivity {
	case "", "low", "medium", "high":
	default:
		http.Error(w, "Invalid caffeine sensitivity", http.StatusBadRequest)
		return
	}

	err := uc.Users.UpdatePreferences(r.Context(), claims.UserID, prefs)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("update preferences: %v", err)
		http.Error(w, "Error updating preferences", http.StatusInternalServerError)
		return
	}

	if current := s.State().User; current != nil && current.ID == claims.UserID {
		s.UpdatePreferences(prefs)
	}
	writeJSON(w, http.StatusOK, prefs)
}

// GetFavorites returns the signed-in user's favorite drinks from the menu
func (uc *UserController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.FavoriteDrinks())
}

// GetRecommendations returns up to six recommended drinks
func (uc *UserController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.RecommendedDrinks())
}

// SetRecommendations replaces the session's recommendation lists
func (uc *UserController) SetRecommendations(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, uc.Sessions)
	if !ok {
		return
	}
	var recs models.AIRecommendations
	if err := json.NewDecoder(r.Body).Decode(&recs); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	s.SetAIRecommendations(recs)
	writeJSON(w, http.StatusOK, s.RecommendedDrinks())
}
