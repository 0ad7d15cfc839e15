//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// StreamSound is a system alert sound shipped with macOS.
const StreamSound = "Submarine"

type osascriptNotifier struct{}

// Desktop returns the Notification Center backed notifier. It goes through
// osascript because the notification APIs are only exposed to signed app
// bundles, not plain binaries.
func Desktop() Notifier {
	return osascriptNotifier{}
}

func (osascriptNotifier) Send(summary, body, sound string) error {
	script := fmt.Sprintf("display notification %q with title %q sound name %q", body, summary, sound)
	if out, err := exec.Command("osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %v: %s", err, out)
	}
	return nil
}
