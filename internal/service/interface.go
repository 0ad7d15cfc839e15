package service

import (
	"context"

	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/domain"
)

// EventService defines the interface for webhook event handling.
type EventService interface {
	// HandleEvent decides whether the event warrants a desktop notification
	// and delivers it. The outcome reports which branch was taken; an error
	// means the notification could not be delivered.
	HandleEvent(ctx context.Context, event *domain.Event) (domain.DispatchOutcome, error)
}
