package controllers

import (
	"encoding/json"
	"net/http"

	"shinmen-coffee/models"
	"shinmen-coffee/store"

	"github.com/gorilla/mux"
)

// CartController handles cart-related requests
type CartController struct {
	Sessions *store.Registry
}

// NewCartController creates a new CartController
func NewCartController(sessions *store.Registry) *CartController {
	return &CartController{Sessions: sessions}
}

// AddToCartRequest adds quantity of an item. The item's default customization applies when none is given.
type AddToCartRequest struct {
	ItemID         string                      `json:"item_id"`
	Quantity       int                         `json:"quantity"`
	Customizations *models.CoffeeCustomization `json:"customizations"`
}

// AddToCart adds an item to the session cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, cc.Sessions)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	item, found := s.MenuItem(req.ItemID)
	if !found {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	customization := item.Customization
	if req.Customizations != nil {
		customization = *req.Customizations
	}

	if err := s.AddToCart(item, customization, req.Quantity); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Cart())
}

// GetCart returns the session cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, cc.Sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Cart())
}

// UpdateCartItem applies a partial update to the lines of an item
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, cc.Sessions)
	if !ok {
		return
	}

	var update store.CartUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := s.UpdateCartItem(mux.Vars(r)["item_id"], update); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Cart())
}

// RemoveFromCart removes every line of an item
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, cc.Sessions)
	if !ok {
		return
	}
	s.RemoveFromCart(mux.Vars(r)["item_id"])
	writeJSON(w, http.StatusOK, s.Cart())
}

// ClearCart empties the session cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, cc.Sessions)
	if !ok {
		return
	}
	s.ClearCart()
	writeJSON(w, http.StatusOK, s.Cart())
}
