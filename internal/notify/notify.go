// Package notify delivers desktop alerts through the platform's native
// notification facility. Each target OS has its own implementation behind
// the Notifier interface, selected at build time; the dispatcher only ever
// sees the interface.
package notify

// Notifier shows a desktop notification with the given summary, body and
// platform sound name.
type Notifier interface {
	Send(summary, body, sound string) error
}
