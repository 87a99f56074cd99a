package notify

import (
	"fyne.io/fyne/v2"

	"profile-editor/internal/core"
	"profile-editor/internal/logger"
)

// DesktopNotifier announces finished background tasks outside the app window.
type DesktopNotifier struct {
	app fyne.App
	log *logger.Logger
}

// New creates a notifier. The app may be nil, in which case only the native
// toast path is available.
func New(app fyne.App, log *logger.Logger) *DesktopNotifier {
	return &DesktopNotifier{app: app, log: log}
}

// Send shows a desktop notification. On Windows the native toast is
// preferred; elsewhere, and whenever the toast fails, the toolkit
// notification is used. Failures are logged, never returned.
func (n *DesktopNotifier) Send(title, message string) {
	if n == nil || (title == "" && message == "") {
		return
	}
	if err := n.deliver(title, message); err != nil {
		n.logf("Notification: %s - %s (%v)", title, message, err)
		return
	}
	n.logf("Notification sent: %s - %s", title, message)
}

func (n *DesktopNotifier) deliver(title, message string) error {
	var toastErr error
	if core.IsWin || n.app == nil {
		toastErr = sendToast(title, message)
		if toastErr == nil {
			return nil
		}
	}
	if n.app == nil {
		return toastErr
	}
	n.app.SendNotification(fyne.NewNotification(title, message))
	return nil
}

func (n *DesktopNotifier) logf(format string, args ...any) {
	if n.log != nil {
		n.log.Logf(format, args...)
	}
}
