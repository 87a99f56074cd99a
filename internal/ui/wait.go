package ui

// WaitDialog is the long-lived handle returned for KindWait. It signals a
// running background task; every mutator defers through the toolkit idle
// queue so callers on worker goroutines never touch widgets directly.
type WaitDialog struct {
	tk          Toolkit
	translate   func(string) string
	dialog      Dialog
	label       Label
	defaultText string
}

// NewWaitDialog builds the wait dialog from the resource file. An empty text
// keeps the label text defined in the markup as the default.
func (p *Presenter) NewWaitDialog(parent Window, text string) (*WaitDialog, error) {
	builder, err := p.builderForKind(KindWait, false)
	if err != nil {
		return nil, err
	}
	dialog, err := builder.Dialog(KindWait.objectID())
	if err != nil {
		return nil, err
	}
	label, err := builder.Label("wait_dialog_label")
	if err != nil {
		return nil, err
	}
	dialog.SetTransientFor(parent)

	defaultText := text
	if defaultText == "" {
		defaultText = label.Text()
	}
	return &WaitDialog{
		tk:          p.tk,
		translate:   p.translate,
		dialog:      dialog,
		label:       label,
		defaultText: defaultText,
	}, nil
}

// Show updates the label and presents the dialog.
func (w *WaitDialog) Show(text string) {
	if w == nil {
		return
	}
	w.SetText(text)
	w.tk.RunIdle(w.dialog.Show)
}

// SetText replaces the label text, falling back to the default when empty.
func (w *WaitDialog) SetText(text string) {
	if w == nil {
		return
	}
	if text == "" {
		text = w.defaultText
	}
	message := w.translate(text)
	w.tk.RunIdle(func() {
		w.label.SetText(message)
	})
}

// Hide withdraws the dialog without destroying it.
func (w *WaitDialog) Hide() {
	if w == nil {
		return
	}
	w.tk.RunIdle(w.dialog.Hide)
}

// Destroy disposes the dialog.
func (w *WaitDialog) Destroy() {
	if w == nil {
		return
	}
	w.tk.RunIdle(w.dialog.Destroy)
}
