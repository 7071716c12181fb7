// Package notify formats and sends desktop notifications for tilewall
// events.
package notify

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/example/tilewall/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCopy emits a notification when a pattern is copied to the clipboard.
	EventCopy Event = "copy"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from the environment.
type Preferences struct {
	Title string

	// AppName and Timeout are passed through to the platform. Zero values
	// leave the platform defaults in place.
	AppName string
	Timeout time.Duration
	Events  map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "tilewall",
		Events: map[Event]EventPreference{
			EventCopy: {Template: "Copied %s to clipboard"},
		},
	}
}

// LoadPreferences reads overrides from TILEWALL_NOTIFY_* variables.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("TILEWALL_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	if v := strings.TrimSpace(os.Getenv("TILEWALL_NOTIFY_APP_NAME")); v != "" {
		prefs.AppName = v
	}
	if v := strings.TrimSpace(os.Getenv("TILEWALL_NOTIFY_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			log.Printf("ignoring TILEWALL_NOTIFY_TIMEOUT=%q: want a duration such as 5s", v)
		} else {
			prefs.Timeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("TILEWALL_NOTIFY_COPY_TEXT")); v != "" {
		prefs.Events[EventCopy] = EventPreference{Template: v}
	}
	return prefs
}

// Sender delivers a rendered notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
}

// New creates a Notifier that delivers through platform.Notify.
func New(prefs Preferences) *Notifier {
	return NewWithSender(prefs, platform.Notify)
}

// NewWithSender creates a Notifier that delivers through send.
func NewWithSender(prefs Preferences, send Sender) *Notifier {
	cloned := prefs
	cloned.Events = make(map[Event]EventPreference, len(prefs.Events))
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: send}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Copy sends a clipboard notification. detail names what was copied.
func (n *Notifier) Copy(detail string) {
	if strings.TrimSpace(detail) == "" {
		detail = "pattern"
	}
	n.dispatch(EventCopy, detail)
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string) {
	if !n.enabledFor(event) || n.send == nil {
		return
	}
	template := strings.TrimSpace(n.prefs.Events[event].Template)
	if template == "" {
		return
	}
	body := template
	if strings.Contains(template, "%") {
		body = fmt.Sprintf(template, strings.TrimSpace(detail))
	}
	if err := n.send(n.prefs.Title, strings.TrimSpace(body), n.options()); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

func (n *Notifier) options() platform.Options {
	return platform.Options{AppName: n.prefs.AppName, Timeout: n.prefs.Timeout}
}
