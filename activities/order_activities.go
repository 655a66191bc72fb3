package activities

import (
	"context"
	"errors"

	"shinmen-coffee/models"
	"shinmen-coffee/store"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
)

// StatusUpdater applies order status changes to a session
type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, sessionID, orderID string, status models.OrderStatus) error
	OrderStatus(ctx context.Context, sessionID, orderID string) (models.OrderStatus, error)
}

// OrderActivities contains order-related activities
type OrderActivities struct {
	Orders StatusUpdater
}

// UpdateOrderStatus moves an order to status in its session and returns the status the order holds.
// An order that already moved past status, for example by hand, keeps its status.
func (a *OrderActivities) UpdateOrderStatus(ctx context.Context, sessionID, orderID string, status models.OrderStatus) (models.OrderStatus, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Updating order status", "orderID", orderID, "status", status)

	err := a.Orders.UpdateOrderStatus(ctx, sessionID, orderID, status)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrInvalidTransition):
		current, lookupErr := a.Orders.OrderStatus(ctx, sessionID, orderID)
		if lookupErr == nil && current.Beyond(status) {
			logger.Info("Order already past requested status", "orderID", orderID, "status", status, "current", current)
			return current, nil
		}
		logger.Warn("Order status rejected", "orderID", orderID, "status", status, "error", err)
		return "", temporal.NewNonRetryableApplicationError(err.Error(), "InvalidTransition", err)
	case errors.Is(err, store.ErrOrderNotFound):
		logger.Warn("Order status rejected", "orderID", orderID, "status", status, "error", err)
		return "", temporal.NewNonRetryableApplicationError(err.Error(), "InvalidTransition", err)
	default:
		return "", err
	}

	logger.Info("Order status updated", "orderID", orderID, "status", status)
	return status, nil
}
