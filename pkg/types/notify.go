package types

// Severity classifies a notification signal for display.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives transient user-facing signals (toasts, banners).
// The catalog core only produces the signal; delivery is the consumer's
// concern.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NopNotifier discards every signal.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Severity, string) {}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(severity Severity, message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(severity Severity, message string) {
	f(severity, message)
}
