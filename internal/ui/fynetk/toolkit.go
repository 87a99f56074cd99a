// Package fynetk implements the ui.Toolkit collaborator on top of Fyne.
package fynetk

import (
	"fyne.io/fyne/v2"

	"profile-editor/internal/ui"
)

// Toolkit drives Fyne windows and dialogs for the presenter.
type Toolkit struct {
	app       fyne.App
	translate func(string) string
}

// New wraps a running Fyne application. The translate callback is applied to
// translatable markup properties at build time, the way a builder with a
// translation domain would.
func New(app fyne.App, translate func(string) string) *Toolkit {
	if translate == nil {
		translate = func(key string) string { return key }
	}
	return &Toolkit{app: app, translate: translate}
}

// NewBuilder returns a builder instantiating Fyne widgets from markup.
func (t *Toolkit) NewBuilder() ui.Builder {
	return &Builder{translate: t.translate, objects: map[string]any{}}
}

// NewFileChooser constructs a native-style file chooser over the parent
// window.
func (t *Toolkit) NewFileChooser(parent ui.Window, opts ui.ChooserOptions) ui.FileChooser {
	return &fileChooser{parent: t.window(parent), opts: opts}
}

// RunIdle defers fn onto the Fyne main loop.
func (t *Toolkit) RunIdle(fn func()) {
	if fn == nil {
		return
	}
	fyne.Do(fn)
}

func (t *Toolkit) window(parent ui.Window) fyne.Window {
	if w, ok := parent.(fyne.Window); ok && w != nil {
		return w
	}
	if t.app != nil {
		if windows := t.app.Driver().AllWindows(); len(windows) > 0 {
			return windows[0]
		}
	}
	return nil
}
