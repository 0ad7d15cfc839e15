//go:build !windows && !darwin

package notify

import (
	"fmt"
	"time"

	libnotify "github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

// StreamSound is the freedesktop sound-naming-spec event for new messages.
const StreamSound = "message-new-instant"

const appName = "BiliBiliRecNotifier"

type dbusNotifier struct{}

// Desktop returns the D-Bus backed notifier.
func Desktop() Notifier {
	return dbusNotifier{}
}

func (dbusNotifier) Send(summary, body, sound string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	n := libnotify.Notification{
		AppName: appName,
		Summary: summary,
		Body:    body,
		Hints: map[string]dbus.Variant{
			"sound-name": dbus.MakeVariant(sound),
		},
		// Sent as int32 milliseconds over D-Bus; -1 lets the
		// notification server pick its default timeout.
		ExpireTimeout: -time.Millisecond,
	}

	if _, err := libnotify.SendNotification(conn, n); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
