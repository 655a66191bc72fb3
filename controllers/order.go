// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"shinmen-coffee/middleware"
	"shinmen-coffee/models"
	"shinmen-coffee/store"

	"github.com/gorilla/mux"
)

// OrderTracker follows a pending order through preparation
type OrderTracker interface {
	TrackOrder(ctx context.Context, sessionID string, order models.Order) error
	CancelOrder(ctx context.Context, orderID, reason string) error
}

// OrderMailer sends order confirmations
type OrderMailer interface {
	SendOrderConfirmationEmail(toEmail string, order models.Order) error
}

// OrderController handles order-related requests
type OrderController struct {
	Sessions *store.Registry
	Tracker  OrderTracker
	Mailer   OrderMailer
}

// NewOrderController creates a new OrderController. tracker and mailer may be nil.
func NewOrderController(sessions *store.Registry, tracker OrderTracker, mailer OrderMailer) *OrderController {
	return &OrderController{
		Sessions: sessions,
		Tracker:  tracker,
		Mailer:   mailer,
	}
}

// CheckoutRequest carries the pickup details of a checkout
type CheckoutRequest struct {
	PickupLocation      string `json:"pickup_location"`
	SpecialInstructions string `json:"special_instructions"`
}

// CreateOrder checks out the session cart
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, oc.Sessions)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.PickupLocation = strings.TrimSpace(req.PickupLocation)
	if req.PickupLocation == "" {
		http.Error(w, "Pickup location is required", http.StatusBadRequest)
		return
	}

	order, err := s.CreateOrder(req.PickupLocation, req.SpecialInstructions)
	if err != nil {
		storeError(w, err)
		return
	}

	if oc.Tracker != nil {
		sessionID, _ := middleware.SessionID(r.Context())
		if err := oc.Tracker.TrackOrder(r.Context(), sessionID, order); err != nil {
			log.Printf("Failed to start tracking order %s: %v", order.ID, err)
		}
	}

	if user := s.State().User; oc.Mailer != nil && user != nil && user.Email != "" {
		go func(email string) {
			if err := oc.Mailer.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(user.Email)
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetOrders returns the session's order history, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, oc.Sessions)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.State().OrderHistory)
}

// GetCurrentOrder returns the order placed last in this session
func (oc *OrderController) GetCurrentOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, oc.Sessions)
	if !ok {
		return
	}
	current := s.State().CurrentOrder
	if current == nil {
		http.Error(w, "No current order", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, current)
}

// UpdateOrderStatus moves an order along its lifecycle
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	s, ok := sessionStore(w, r, oc.Sessions)
	if !ok {
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Status.Valid() {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := s.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		storeError(w, err)
		return
	}

	if oc.Tracker != nil && order.Status == models.StatusCancelled {
		if err := oc.Tracker.CancelOrder(r.Context(), orderID, "cancelled by customer"); err != nil {
			log.Printf("Failed to signal cancellation of %s: %v", orderID, err)
		}
	}
	writeJSON(w, http.StatusOK, order)
}
