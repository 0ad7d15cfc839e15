//go:build windows

package notify

import (
	"fmt"

	"github.com/go-toast/toast"
)

// StreamSound is the winsoundevent name for incoming mail, the closest
// stock sound to a "new message" alert.
const StreamSound = "Mail"

const appID = "BiliBiliRecNotifier"

type toastNotifier struct{}

// Desktop returns the toast backed notifier.
func Desktop() Notifier {
	return toastNotifier{}
}

func (toastNotifier) Send(summary, body, sound string) error {
	n := toast.Notification{
		AppID:   appID,
		Title:   summary,
		Message: body,
	}

	// toast's audio type is unexported; map the sound name onto its
	// ms-winsoundevent constants.
	switch sound {
	case "Mail":
		n.Audio = toast.Mail
	case "IM":
		n.Audio = toast.IM
	case "Reminder":
		n.Audio = toast.Reminder
	default:
		n.Audio = toast.Default
	}

	if err := n.Push(); err != nil {
		return fmt.Errorf("failed to push toast: %w", err)
	}
	return nil
}
