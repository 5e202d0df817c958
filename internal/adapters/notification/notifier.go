// Package notification delivers desktop notifications and completion
// sounds through the platform notifier.
package notification

import (
	"github.com/gen2brain/beeep"
)

const appTitle = "FlowTask"

// Notifier sends desktop notifications. A disabled notifier swallows
// every call so callers never branch on configuration.
type Notifier struct {
	enabled bool
	sound   bool
}

// New creates a notifier.
func New(enabled, sound bool) *Notifier {
	return &Notifier{enabled: enabled, sound: sound}
}

// Notify shows a desktop notification. Delivery failures are ignored;
// a missing notification daemon must not break the timer.
func (n *Notifier) Notify(title, message string) {
	if !n.enabled {
		return
	}
	if title == "" {
		title = appTitle
	}
	_ = beeep.Notify(title, message, "")
}

// Chime plays the completion sound.
func (n *Notifier) Chime() {
	if !n.enabled || !n.sound {
		return
	}
	_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
