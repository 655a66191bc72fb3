package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned when an order cannot move to the requested status
var ErrInvalidTransition = errors.New("invalid order status transition")

// OrderStatus is the lifecycle stage of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ReadyAfter is how long after checkout an order is expected to be ready
const ReadyAfter = 15 * time.Minute

var nextStatuses = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

var stageRank = map[OrderStatus]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusCompleted: 3,
}

// Beyond reports whether an order in status s has already passed target:
// s is terminal, or later than target on the pending to completed line.
func (s OrderStatus) Beyond(target OrderStatus) bool {
	if s == target {
		return false
	}
	if s.Terminal() || target == StatusCancelled {
		return s.Terminal()
	}
	return stageRank[s] > stageRank[target]
}

// CanTransition reports whether an order in status s may move to next.
// Staying in the same status is always allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range nextStatuses[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is a checked-out snapshot of the cart
type Order struct {
	ID                  string      `bson:"id" json:"id"`
	Items               []CartItem  `bson:"items" json:"items"`
	Total               float64     `bson:"total" json:"total"`
	Status              OrderStatus `bson:"status" json:"status"`
	OrderTime           time.Time   `bson:"order_time" json:"order_time"`
	EstimatedReadyTime  time.Time   `bson:"estimated_ready_time" json:"estimated_ready_time"`
	PickupLocation      string      `bson:"pickup_location" json:"pickup_location"`
	SpecialInstructions string      `bson:"special_instructions" json:"special_instructions"`
}

// Transition moves the order to next or returns ErrInvalidTransition
func (o *Order) Transition(next OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !o.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}
