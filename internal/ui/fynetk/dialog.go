package fynetk

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"profile-editor/internal/ui"
)

// builderDialog is a dialog described by markup, realized as a Fyne dialog
// the first time it is run or shown.
type builderDialog struct {
	title       string
	buttons     ui.ButtonsType
	messageType ui.MessageType
	body        string
	content     []fyne.CanvasObject
	parent      fyne.Window
	d           dialog.Dialog
}

func (b *builderDialog) SetTransientFor(parent ui.Window) {
	if w, ok := parent.(fyne.Window); ok {
		b.parent = w
	}
}

func (b *builderDialog) SetMarkup(text string) {
	b.body = text
}

// Run realizes the dialog on the main loop and blocks the calling goroutine
// until a button is pressed or the dialog is closed.
func (b *builderDialog) Run() ui.Response {
	responses := make(chan ui.Response, 1)
	fyne.Do(func() {
		b.present(responses)
	})
	return <-responses
}

// Show realizes the dialog without waiting for a response. Must run on the
// UI goroutine (the presenter defers it through RunIdle).
func (b *builderDialog) Show() {
	if b.d == nil {
		b.present(nil)
		return
	}
	b.d.Show()
}

func (b *builderDialog) Hide() {
	if b.d != nil {
		b.d.Hide()
	}
}

func (b *builderDialog) Destroy() {
	if b.d != nil {
		b.d.Hide()
		b.d = nil
	}
}

func (b *builderDialog) present(responses chan ui.Response) {
	respond := func(r ui.Response) {
		if responses == nil {
			return
		}
		select {
		case responses <- r:
		default:
		}
	}
	if b.parent == nil {
		respond(ui.ResponseDeleteEvent)
		return
	}

	content := b.buildContent()
	switch b.buttons {
	case ui.ButtonsOKCancel:
		d := dialog.NewCustomConfirm(b.title, "OK", "Cancel", content, func(ok bool) {
			if ok {
				respond(ui.ResponseOK)
			} else {
				respond(ui.ResponseCancel)
			}
		}, b.parent)
		d.SetOnClosed(func() { respond(ui.ResponseCancel) })
		b.d = d
	case ui.ButtonsYesNo:
		d := dialog.NewCustomConfirm(b.title, "Yes", "No", content, func(ok bool) {
			if ok {
				respond(ui.ResponseYes)
			} else {
				respond(ui.ResponseNo)
			}
		}, b.parent)
		d.SetOnClosed(func() { respond(ui.ResponseNo) })
		b.d = d
	case ui.ButtonsClose:
		d := dialog.NewCustom(b.title, "Close", content, b.parent)
		d.SetOnClosed(func() { respond(ui.ResponseClose) })
		b.d = d
	case ui.ButtonsCancel:
		d := dialog.NewCustom(b.title, "Cancel", content, b.parent)
		d.SetOnClosed(func() { respond(ui.ResponseCancel) })
		b.d = d
	case ui.ButtonsNone:
		d := dialog.NewCustomWithoutButtons(b.title, content, b.parent)
		d.SetOnClosed(func() { respond(ui.ResponseDeleteEvent) })
		b.d = d
	default:
		d := dialog.NewCustom(b.title, "OK", content, b.parent)
		d.SetOnClosed(func() { respond(ui.ResponseOK) })
		b.d = d
	}
	b.d.Show()
}

func (b *builderDialog) buildContent() fyne.CanvasObject {
	var items []fyne.CanvasObject
	if b.body != "" {
		bodyLabel := widget.NewLabel(b.body)
		bodyLabel.Wrapping = fyne.TextWrapWord
		if icon := b.severityIcon(); icon != nil {
			items = append(items, container.NewHBox(icon, bodyLabel))
		} else {
			items = append(items, bodyLabel)
		}
	}
	items = append(items, b.content...)
	if len(items) == 1 {
		return items[0]
	}
	return container.NewVBox(items...)
}

func (b *builderDialog) severityIcon() fyne.CanvasObject {
	switch b.messageType {
	case ui.MessageError:
		return widget.NewIcon(theme.ErrorIcon())
	case ui.MessageWarning:
		return widget.NewIcon(theme.WarningIcon())
	case ui.MessageQuestion:
		return widget.NewIcon(theme.QuestionIcon())
	case ui.MessageInfo:
		return widget.NewIcon(theme.InfoIcon())
	default:
		return nil
	}
}
