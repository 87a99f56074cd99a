package fynetk

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"profile-editor/internal/ui"
)

// fileChooser adapts Fyne's file dialogs to the ui.FileChooser collaborator.
type fileChooser struct {
	parent fyne.Window
	opts   ui.ChooserOptions
	filter *ui.FileFilter
	folder string
	path   string

	// Fyne's file dialogs have no create-folder toggle; when set, a missing
	// starting folder is created before the dialog opens instead.
	createFolders bool
}

func (c *fileChooser) SetCurrentFolder(path string) {
	c.folder = path
}

func (c *fileChooser) AddFilter(filter ui.FileFilter) {
	c.filter = &filter
}

func (c *fileChooser) SetCreateFolders(create bool) {
	c.createFolders = create
}

func (c *fileChooser) Filename() string {
	return c.path
}

func (c *fileChooser) CurrentFolder() string {
	return c.folder
}

func (c *fileChooser) Destroy() {}

// Run shows the chooser on the main loop and blocks the calling goroutine
// until a selection is accepted or the dialog is dismissed.
func (c *fileChooser) Run() ui.Response {
	responses := make(chan ui.Response, 1)
	fyne.Do(func() {
		c.present(responses)
	})
	return <-responses
}

func (c *fileChooser) present(responses chan ui.Response) {
	respond := func(r ui.Response) {
		select {
		case responses <- r:
		default:
		}
	}
	if c.parent == nil {
		respond(ui.ResponseDeleteEvent)
		return
	}

	var d *dialog.FileDialog
	switch c.opts.Action {
	case ui.ChooserActionOpen:
		d = dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				respond(ui.ResponseCancel)
				return
			}
			c.path = reader.URI().Path()
			_ = reader.Close()
			respond(ui.ResponseAccept)
		}, c.parent)
		if c.filter != nil {
			if exts := extensions(c.filter.Patterns); len(exts) > 0 {
				d.SetFilter(storage.NewExtensionFileFilter(exts))
			}
		}
	case ui.ChooserActionSave:
		d = dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				respond(ui.ResponseCancel)
				return
			}
			c.path = writer.URI().Path()
			_ = writer.Close()
			respond(ui.ResponseAccept)
		}, c.parent)
	default:
		d = dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
			if err != nil || list == nil {
				respond(ui.ResponseCancel)
				return
			}
			c.path = list.Path()
			respond(ui.ResponseAccept)
		}, c.parent)
	}

	if c.opts.Title != "" {
		d.SetTitleText(c.opts.Title)
	}
	if c.folder != "" {
		c.ensureFolder()
		if uri, err := storage.ListerForURI(storage.NewFileURI(c.folder)); err == nil {
			d.SetLocation(uri)
		}
	}
	d.Show()
}

// ensureFolder creates the starting folder when folder creation was
// requested and it does not exist yet, so the dialog can open in it.
func (c *fileChooser) ensureFolder() {
	if !c.createFolders || c.folder == "" {
		return
	}
	if _, err := os.Stat(c.folder); err != nil {
		_ = os.MkdirAll(c.folder, 0o755)
	}
}

// extensions converts glob patterns like *.json into the extension list the
// toolkit filter expects.
func extensions(patterns []string) []string {
	var exts []string
	for _, pattern := range patterns {
		trimmed := strings.TrimPrefix(strings.TrimSpace(pattern), "*")
		if strings.HasPrefix(trimmed, ".") {
			exts = append(exts, trimmed)
		}
	}
	return exts
}
