package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/domain"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/internal/notify"
	"github.com/BillGoldenWater/BiliBiliRecNotifier/pkg/log"
)

var ErrNotifyFailed = errors.New("failed to deliver notification")

const notificationSummary = "Live start"

// eventServiceImpl implements EventService interface.
type eventServiceImpl struct {
	notifier notify.Notifier
	filter   domain.RoomFilter
}

// NewEventService creates a new event service. A nil filter disables room
// filtering; the filter must not be mutated after this call.
func NewEventService(notifier notify.Notifier, filter domain.RoomFilter) EventService {
	return &eventServiceImpl{
		notifier: notifier,
		filter:   filter,
	}
}

// HandleEvent notifies on stream-start events for rooms passing the filter.
func (s *eventServiceImpl) HandleEvent(ctx context.Context, event *domain.Event) (domain.DispatchOutcome, error) {
	l := log.Ctx(ctx)

	if !event.IsStreamStart() {
		l.Debug().
			Str(log.FieldEventType, event.EventType).
			Str(log.FieldEventID, event.EventID).
			Msg("ignoring non stream-start event")
		return domain.OutcomeSkipped, nil
	}

	if !s.filter.Allows(event.EventData.RoomID) {
		l.Info().
			Int64(log.FieldRoomID, event.EventData.RoomID).
			Msg("room not in filter, notification suppressed")
		return domain.OutcomeFiltered, nil
	}

	body := fmt.Sprintf("Room %d started live stream.\n\n%s",
		event.EventData.RoomID, event.EventData.Title)

	if err := s.notifier.Send(notificationSummary, body, notify.StreamSound); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}

	l.Info().
		Int64(log.FieldRoomID, event.EventData.RoomID).
		Str("title", event.EventData.Title).
		Msg("notification dispatched")
	return domain.OutcomeDispatched, nil
}
