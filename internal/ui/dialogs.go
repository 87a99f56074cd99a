// Package ui presents the application dialogs: message boxes, file
// choosers, input prompts and the about/wait dialogs. Layouts come from an
// external markup resource; the message dialog uses an inline template.
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"profile-editor/internal/core"
	"profile-editor/internal/resource"
)

// Kind selects which dialog a Present call shows.
type Kind string

const (
	KindInput    Kind = "input"
	KindChooser  Kind = "chooser"
	KindError    Kind = "error"
	KindQuestion Kind = "question"
	KindInfo     Kind = "info"
	KindAbout    Kind = "about"
	KindWait     Kind = "wait"
)

func (k Kind) String() string {
	return string(k)
}

// objectID is the markup id of the dialog object for this kind.
func (k Kind) objectID() string {
	return string(k) + "_dialog"
}

const messageDialogID = "message_dialog"

// messageTemplate is the inline layout every message dialog builds from.
var messageTemplate = template.Must(template.New(messageDialogID).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<interface>
  <object class="MessageDialog" id="message_dialog">
    <property name="use-header-bar">{{.UseHeader}}</property>
    <property name="modal">true</property>
    <property name="width-request">250</property>
    <property name="destroy-with-parent">true</property>
    <property name="skip-taskbar-hint">true</property>
    <property name="message-type">{{.MessageType}}</property>
    <property name="buttons">{{.Buttons}}</property>
  </object>
</interface>
`))

type messageFields struct {
	UseHeader   int
	MessageType int
	Buttons     int
}

// resourceFields are the substitutable fields of markup resource files.
type resourceFields struct {
	UseHeader int
	Title     string
}

// Result is the outcome of a dialog presentation.
type Result struct {
	// Response is the button the user pressed, or ResponseCancel.
	Response Response
	// Text is the entered text after a confirmed input dialog.
	Text string
	// Path is the resolved selection after an accepted chooser. Directories
	// end with the platform separator.
	Path string
	// Wait is the long-lived handle returned for KindWait.
	Wait *WaitDialog
}

// Canceled reports whether the user dismissed the dialog without confirming.
func (r Result) Canceled() bool {
	return r.Response == ResponseCancel
}

// Options carries the per-kind parameters of a Present call.
type Options struct {
	Text       string
	Settings   Settings
	Action     ChooserAction
	Filter     *FileFilter
	Buttons    ButtonsType
	Title      string
	CreateDirs bool
}

// Presenter constructs dialogs from cached resource markup, shows them
// modally and returns typed results.
type Presenter struct {
	tk        Toolkit
	resources *resource.Cache
	translate func(string) string
}

// NewPresenter creates a presenter on top of a toolkit, a resource cache and
// a translation lookup. A nil translate is treated as identity.
func NewPresenter(tk Toolkit, resources *resource.Cache, translate func(string) string) *Presenter {
	if translate == nil {
		translate = func(key string) string { return key }
	}
	return &Presenter{tk: tk, resources: resources, translate: translate}
}

// Present shows the dialog selected by kind and blocks until it is
// dismissed, except for KindWait which returns a live handle in Result.Wait.
func (p *Presenter) Present(kind Kind, parent Window, opts Options) (Result, error) {
	switch kind {
	case KindInfo:
		return p.Message(parent, MessageInfo, ButtonsOK, opts.Text)
	case KindError:
		return p.Message(parent, MessageError, ButtonsOK, opts.Text)
	case KindQuestion:
		buttons := opts.Buttons
		if buttons == ButtonsNone {
			buttons = ButtonsOKCancel
		}
		text := opts.Text
		if text == "" {
			text = "Are you sure?"
		}
		return p.Message(parent, MessageQuestion, buttons, text)
	case KindChooser:
		if opts.Settings == nil {
			return Result{}, fmt.Errorf("chooser dialog requires settings")
		}
		return p.Chooser(parent, opts)
	case KindInput:
		return p.Input(parent, opts.Text)
	case KindAbout:
		return p.About(parent)
	case KindWait:
		wait, err := p.NewWaitDialog(parent, opts.Text)
		if err != nil {
			return Result{}, err
		}
		return Result{Response: ResponseNone, Wait: wait}, nil
	default:
		return Result{}, fmt.Errorf("unknown dialog kind %q", kind)
	}
}

// Message shows a message dialog built from the inline template and returns
// the response code of the pressed button.
func (p *Presenter) Message(parent Window, messageType MessageType, buttons ButtonsType, text string) (Result, error) {
	var markup strings.Builder
	err := messageTemplate.Execute(&markup, messageFields{
		UseHeader:   0,
		MessageType: int(messageType),
		Buttons:     int(buttons),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to render message markup: %w", err)
	}

	builder := p.tk.NewBuilder()
	if err := builder.AddFromString(markup.String()); err != nil {
		return Result{}, err
	}
	dialog, err := builder.Dialog(messageDialogID)
	if err != nil {
		return Result{}, err
	}
	dialog.SetTransientFor(parent)
	dialog.SetMarkup(p.translate(text))
	response := dialog.Run()
	dialog.Destroy()
	return Result{Response: response}, nil
}

// Chooser shows a native file/folder chooser rooted at the settings profile
// data path. An accepted selection resolves to an absolute path; directories
// get a trailing separator. Rejection returns the chooser's response as is.
func (p *Presenter) Chooser(parent Window, opts Options) (Result, error) {
	title := ""
	if opts.Title != "" {
		title = p.translate(opts.Title)
	}
	chooser := p.tk.NewFileChooser(parent, ChooserOptions{
		Title:  title,
		Action: opts.Action,
	})
	defer chooser.Destroy()

	if opts.Filter != nil {
		chooser.AddFilter(*opts.Filter)
	}
	chooser.SetCreateFolders(opts.CreateDirs)
	chooser.SetCurrentFolder(opts.Settings.ProfileDataPath())

	response := chooser.Run()
	if response != ResponseAccept {
		return Result{Response: response}, nil
	}

	path := chooser.Filename()
	if path == "" {
		path = chooser.CurrentFolder()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
		return Result{Response: ResponseAccept, Path: abs + core.Sep}, nil
	}
	return Result{Response: ResponseAccept, Path: abs}, nil
}

// ChooserWithPatterns opens a file chooser restricted to the named glob
// patterns, e.g. ChooserWithPatterns(parent, s, "Profiles", []string{"*.json"}, "").
func (p *Presenter) ChooserWithPatterns(parent Window, settings Settings, name string, patterns []string, title string) (Result, error) {
	return p.Present(KindChooser, parent, Options{
		Settings: settings,
		Action:   ChooserActionOpen,
		Filter:   &FileFilter{Name: name, Patterns: patterns},
		Title:    title,
	})
}

// Input shows a text-entry dialog pre-filled with text. A confirmed dialog
// returns the entered string, anything else the cancel sentinel.
func (p *Presenter) Input(parent Window, text string) (Result, error) {
	builder, err := p.builderForKind(KindInput, core.IsGnomeSession)
	if err != nil {
		return Result{}, err
	}
	dialog, err := builder.Dialog(KindInput.objectID())
	if err != nil {
		return Result{}, err
	}
	entry, err := builder.Entry("input_entry")
	if err != nil {
		return Result{}, err
	}
	entry.SetText(text)
	dialog.SetTransientFor(parent)

	response := dialog.Run()
	entered := entry.Text()
	dialog.Destroy()

	if response == ResponseOK {
		return Result{Response: ResponseOK, Text: entered}, nil
	}
	return Result{Response: ResponseCancel}, nil
}

// About shows the static informational dialog from the resource file.
func (p *Presenter) About(parent Window) (Result, error) {
	builder, err := p.builderForKind(KindAbout, false)
	if err != nil {
		return Result{}, err
	}
	dialog, err := builder.Dialog(KindAbout.objectID())
	if err != nil {
		return Result{}, err
	}
	dialog.SetTransientFor(parent)
	response := dialog.Run()
	dialog.Destroy()
	return Result{Response: response}, nil
}

// BuilderFromResource loads markup from path (through the cache), applies
// the header-bar substitution and instantiates the named objects, or the
// whole file when no ids are given.
func (p *Presenter) BuilderFromResource(path string, useHeader bool, ids ...string) (Builder, error) {
	markup, err := p.resources.Load(path)
	if err != nil {
		return nil, err
	}
	expanded, err := expandMarkup(markup, useHeader, "")
	if err != nil {
		return nil, err
	}
	builder := p.tk.NewBuilder()
	if len(ids) > 0 {
		err = builder.AddObjectsFromString(expanded, ids...)
	} else {
		err = builder.AddFromString(expanded)
	}
	if err != nil {
		return nil, err
	}
	return builder, nil
}

func (p *Presenter) builderForKind(kind Kind, useHeader bool) (Builder, error) {
	return p.BuilderFromResource(core.DialogsResourcePath(), useHeader, kind.objectID())
}

func expandMarkup(markup string, useHeader bool, title string) (string, error) {
	tpl, err := template.New("resource").Parse(markup)
	if err != nil {
		return "", fmt.Errorf("failed to parse resource template: %w", err)
	}
	header := 0
	if useHeader {
		header = 1
	}
	var out strings.Builder
	if err := tpl.Execute(&out, resourceFields{UseHeader: header, Title: title}); err != nil {
		return "", fmt.Errorf("failed to expand resource template: %w", err)
	}
	return out.String(), nil
}
