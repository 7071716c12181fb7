// Package platform sends desktop notifications through the host's
// notification service.
package platform

import "time"

// DefaultAppName is reported to the notification service when Options
// does not name an application.
const DefaultAppName = "tilewall"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender. Empty means DefaultAppName.
	AppName string
	// Timeout is how long the notification stays visible where the
	// platform lets the sender choose. Zero leaves it to the platform.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

// expireMillis is the freedesktop expire_timeout: -1 lets the server decide.
func (o Options) expireMillis() int32 {
	if o.Timeout <= 0 {
		return -1
	}
	return int32(o.Timeout.Milliseconds())
}
