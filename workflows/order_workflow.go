package workflows

import (
	"fmt"
	"time"

	"shinmen-coffee/models"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	StatusQuery  = "get-status"
	CancelSignal = "cancel-order"
	PickupSignal = "pickup-order"

	// AcceptDelay is how long a pending order waits before the barista starts on it
	AcceptDelay = 1 * time.Minute
	// PickupWindow is how long a ready order waits for pickup before it is closed
	PickupWindow = 30 * time.Minute
)

// PreparationInput starts tracking one order
type PreparationInput struct {
	SessionID          string
	OrderID            string
	OrderTime          time.Time
	EstimatedReadyTime time.Time
}

// CancelRequest is the payload of the cancel signal
type CancelRequest struct {
	Reason string
}

// PreparationStatus is what the status query returns
type PreparationStatus struct {
	OrderID   string
	Status    models.OrderStatus
	Reason    string
	PickedUp  bool
	UpdatedAt time.Time
}

// OrderPreparationWorkflow walks an order from pending to completed.
// A cancel signal before pickup moves it to cancelled instead.
func OrderPreparationWorkflow(ctx workflow.Context, input PreparationInput) (PreparationStatus, error) {
	logger := workflow.GetLogger(ctx)

	status := PreparationStatus{
		OrderID:   input.OrderID,
		Status:    models.StatusPending,
		UpdatedAt: workflow.Now(ctx),
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        30 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{"InvalidTransition"},
		},
	})

	if err := workflow.SetQueryHandler(ctx, StatusQuery, func() (PreparationStatus, error) {
		return status, nil
	}); err != nil {
		return status, err
	}

	cancelCh := workflow.GetSignalChannel(ctx, CancelSignal)
	pickupCh := workflow.GetSignalChannel(ctx, PickupSignal)

	// advance records the status the order holds afterwards, which is later than next
	// when the order was moved on outside the workflow
	advance := func(next models.OrderStatus) error {
		var current models.OrderStatus
		err := workflow.ExecuteActivity(ctx, "UpdateOrderStatus", input.SessionID, input.OrderID, next).Get(ctx, &current)
		if err != nil {
			return fmt.Errorf("move order %s to %s: %w", input.OrderID, next, err)
		}
		status.Status = current
		status.UpdatedAt = workflow.Now(ctx)
		logger.Info("Order advanced", "orderID", input.OrderID, "status", current)
		return nil
	}

	// waitOrCancel blocks for d and reports whether a cancel signal arrived first
	waitOrCancel := func(d time.Duration) bool {
		if d <= 0 {
			d = time.Millisecond
		}
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		defer cancelTimer()

		cancelled := false
		selector := workflow.NewSelector(ctx)
		selector.AddFuture(workflow.NewTimer(timerCtx, d), func(workflow.Future) {})
		selector.AddReceive(cancelCh, func(ch workflow.ReceiveChannel, more bool) {
			var req CancelRequest
			ch.Receive(ctx, &req)
			status.Reason = req.Reason
			cancelled = true
		})
		selector.Select(ctx)
		return cancelled
	}

	cancel := func() (PreparationStatus, error) {
		logger.Info("Order cancelled", "orderID", input.OrderID, "reason", status.Reason)
		if err := advance(models.StatusCancelled); err != nil {
			return status, err
		}
		return status, nil
	}

	if waitOrCancel(AcceptDelay) {
		return cancel()
	}
	if err := advance(models.StatusPreparing); err != nil {
		return status, err
	}

	if status.Status == models.StatusPreparing {
		prep := input.EstimatedReadyTime.Sub(workflow.Now(ctx))
		if waitOrCancel(prep) {
			return cancel()
		}
		if err := advance(models.StatusReady); err != nil {
			return status, err
		}
	}
	if status.Status.Terminal() {
		return status, nil
	}

	// Ready orders are closed on pickup or when the pickup window lapses
	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	selector := workflow.NewSelector(ctx)
	selector.AddFuture(workflow.NewTimer(timerCtx, PickupWindow), func(workflow.Future) {
		logger.Info("Pickup window lapsed", "orderID", input.OrderID)
	})
	selector.AddReceive(pickupCh, func(ch workflow.ReceiveChannel, more bool) {
		ch.Receive(ctx, nil)
		status.PickedUp = true
	})
	cancelled := false
	selector.AddReceive(cancelCh, func(ch workflow.ReceiveChannel, more bool) {
		var req CancelRequest
		ch.Receive(ctx, &req)
		status.Reason = req.Reason
		cancelled = true
	})
	selector.Select(ctx)
	cancelTimer()

	if cancelled {
		return cancel()
	}

	if err := advance(models.StatusCompleted); err != nil {
		return status, err
	}
	return status, nil
}
