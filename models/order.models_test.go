package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusReady, false},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusCompleted, true},
		{StatusReady, StatusCancelled, true},
		{StatusReady, StatusReady, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPreparing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusBeyond(t *testing.T) {
	tests := []struct {
		current, target OrderStatus
		want            bool
	}{
		{StatusReady, StatusPreparing, true},
		{StatusCompleted, StatusReady, true},
		{StatusCancelled, StatusPreparing, true},
		{StatusCompleted, StatusCancelled, true},
		{StatusCancelled, StatusCompleted, true},
		{StatusPending, StatusReady, false},
		{StatusPreparing, StatusPreparing, false},
		{StatusReady, StatusCancelled, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.current.Beyond(tt.target), "%s beyond %s", tt.current, tt.target)
	}
}
