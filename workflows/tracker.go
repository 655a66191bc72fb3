package workflows

import (
	"context"
	"fmt"

	"shinmen-coffee/models"

	"go.temporal.io/sdk/client"
)

// Tracker starts and signals preparation workflows
type Tracker struct {
	Client    client.Client
	TaskQueue string
}

// WorkflowID is the preparation workflow id of an order
func WorkflowID(orderID string) string {
	return "coffee-order-" + orderID
}

// TrackOrder starts the preparation workflow of a freshly placed order
func (t *Tracker) TrackOrder(ctx context.Context, sessionID string, order models.Order) error {
	_, err := t.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        WorkflowID(order.ID),
		TaskQueue: t.TaskQueue,
	}, OrderPreparationWorkflow, PreparationInput{
		SessionID:          sessionID,
		OrderID:            order.ID,
		OrderTime:          order.OrderTime,
		EstimatedReadyTime: order.EstimatedReadyTime,
	})
	if err != nil {
		return fmt.Errorf("start preparation of %s: %w", order.ID, err)
	}
	return nil
}

// CancelOrder signals the preparation workflow of an order to stop
func (t *Tracker) CancelOrder(ctx context.Context, orderID, reason string) error {
	err := t.Client.SignalWorkflow(ctx, WorkflowID(orderID), "", CancelSignal, CancelRequest{Reason: reason})
	if err != nil {
		return fmt.Errorf("signal cancel of %s: %w", orderID, err)
	}
	return nil
}
