package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-editor/internal/core"
	"profile-editor/internal/resource"
)

const testDialogsMarkup = `<?xml version="1.0" encoding="UTF-8"?>
<interface>
  <object class="Dialog" id="input_dialog">
    <property name="title" translatable="yes">Input</property>
    <property name="use-header-bar">{{.UseHeader}}</property>
    <property name="buttons">5</property>
    <child>
      <object class="Entry" id="input_entry"/>
    </child>
  </object>
  <object class="Dialog" id="wait_dialog">
    <property name="title" translatable="yes">Please, wait!</property>
    <property name="use-header-bar">{{.UseHeader}}</property>
    <property name="buttons">0</property>
    <child>
      <object class="Label" id="wait_dialog_label">
        <property name="label">Please, wait!</property>
      </object>
    </child>
  </object>
  <object class="AboutDialog" id="about_dialog">
    <property name="title" translatable="yes">About</property>
    <property name="buttons">2</property>
  </object>
</interface>
`

// fakeToolkit scripts user responses and records everything the presenter
// asks the widget system to do.
type fakeToolkit struct {
	mu       sync.Mutex
	response Response
	runHook  func(b *fakeBuilder)
	builders []*fakeBuilder
	chooser  *fakeChooser
	idle     []func()
}

func (t *fakeToolkit) NewBuilder() Builder {
	b := &fakeBuilder{tk: t, objects: map[string]any{}}
	t.builders = append(t.builders, b)
	return b
}

func (t *fakeToolkit) NewFileChooser(parent Window, opts ChooserOptions) FileChooser {
	if t.chooser == nil {
		t.chooser = &fakeChooser{}
	}
	t.chooser.opts = opts
	return t.chooser
}

func (t *fakeToolkit) RunIdle(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.idle = append(t.idle, fn)
}

func (t *fakeToolkit) drainIdle() {
	t.mu.Lock()
	queued := t.idle
	t.idle = nil
	t.mu.Unlock()
	for _, fn := range queued {
		fn()
	}
}

func (t *fakeToolkit) pendingIdle() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.idle)
}

func (t *fakeToolkit) lastBuilder() *fakeBuilder {
	if len(t.builders) == 0 {
		return nil
	}
	return t.builders[len(t.builders)-1]
}

type fakeBuilder struct {
	tk      *fakeToolkit
	markups []string
	ids     []string
	objects map[string]any
}

func (b *fakeBuilder) AddFromString(markup string) error {
	return b.add(markup, nil)
}

func (b *fakeBuilder) AddObjectsFromString(markup string, ids ...string) error {
	return b.add(markup, ids)
}

func (b *fakeBuilder) add(markup string, ids []string) error {
	b.markups = append(b.markups, markup)
	b.ids = append(b.ids, ids...)
	doc, err := resource.Parse(markup)
	if err != nil {
		return err
	}
	if ids == nil {
		for idx := range doc.Objects {
			b.instantiate(&doc.Objects[idx])
		}
		return nil
	}
	for _, id := range ids {
		obj := doc.Object(id)
		if obj == nil {
			return fmt.Errorf("markup has no object %q", id)
		}
		b.instantiate(obj)
	}
	return nil
}

func (b *fakeBuilder) instantiate(obj *resource.Object) {
	switch obj.Class {
	case "Entry":
		b.objects[obj.ID] = &fakeEntry{}
	case "Label":
		text, _ := obj.Property("label")
		b.objects[obj.ID] = &fakeLabel{text: text}
	default:
		b.objects[obj.ID] = &fakeDialog{builder: b}
	}
	for _, child := range obj.Children {
		if child.Object != nil {
			b.instantiate(child.Object)
		}
	}
}

func (b *fakeBuilder) Dialog(id string) (Dialog, error) {
	if d, ok := b.objects[id].(*fakeDialog); ok {
		return d, nil
	}
	return nil, fmt.Errorf("builder has no dialog %q", id)
}

func (b *fakeBuilder) Entry(id string) (Entry, error) {
	if e, ok := b.objects[id].(*fakeEntry); ok {
		return e, nil
	}
	return nil, fmt.Errorf("builder has no entry %q", id)
}

func (b *fakeBuilder) Label(id string) (Label, error) {
	if l, ok := b.objects[id].(*fakeLabel); ok {
		return l, nil
	}
	return nil, fmt.Errorf("builder has no label %q", id)
}

func (b *fakeBuilder) entry(id string) *fakeEntry {
	e, _ := b.objects[id].(*fakeEntry)
	return e
}

func (b *fakeBuilder) label(id string) *fakeLabel {
	l, _ := b.objects[id].(*fakeLabel)
	return l
}

type fakeDialog struct {
	builder   *fakeBuilder
	parent    Window
	body      string
	shown     bool
	hidden    bool
	destroyed bool
}

func (d *fakeDialog) SetTransientFor(parent Window) { d.parent = parent }
func (d *fakeDialog) SetMarkup(text string)         { d.body = text }

func (d *fakeDialog) Run() Response {
	if hook := d.builder.tk.runHook; hook != nil {
		hook(d.builder)
	}
	return d.builder.tk.response
}

func (d *fakeDialog) Show()    { d.shown = true }
func (d *fakeDialog) Hide()    { d.hidden = true }
func (d *fakeDialog) Destroy() { d.destroyed = true }

type fakeEntry struct {
	text string
}

func (e *fakeEntry) Text() string        { return e.text }
func (e *fakeEntry) SetText(text string) { e.text = text }

type fakeLabel struct {
	text string
}

func (l *fakeLabel) Text() string        { return l.text }
func (l *fakeLabel) SetText(text string) { l.text = text }

type fakeChooser struct {
	opts          ChooserOptions
	response      Response
	filename      string
	currentFolder string
	folder        string
	filter        *FileFilter
	createFolders bool
	destroyed     bool
}

func (c *fakeChooser) SetCurrentFolder(path string) { c.folder = path }
func (c *fakeChooser) AddFilter(filter FileFilter) { c.filter = &filter }
func (c *fakeChooser) SetCreateFolders(create bool) { c.createFolders = create }
func (c *fakeChooser) Run() Response { return c.response }
func (c *fakeChooser) Filename() string { return c.filename }
func (c *fakeChooser) CurrentFolder() string { return c.currentFolder }
func (c *fakeChooser) Destroy() { c.destroyed = true }

type fakeSettings struct {
	dataPath string
}

func (s *fakeSettings) ProfileDataPath() string { return s.dataPath }

// newTestPresenter points the resource path at a temp copy of the dialog
// markup and wires a presenter to the fake toolkit. The translate callback
// upper-cases so translated strings are recognizable in assertions.
func newTestPresenter(t *testing.T) (*Presenter, *fakeToolkit) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, core.DialogsResourceName), []byte(testDialogsMarkup), 0o600))
	t.Setenv(core.ResourcesDirEnv, dir)

	tk := &fakeToolkit{response: ResponseOK}
	presenter := NewPresenter(tk, resource.NewCache(nil), strings.ToUpper)
	return presenter, tk
}

func TestPresentMessageKinds(t *testing.T) {
	cases := []struct {
		name     string
		kind     Kind
		response Response
	}{
		{"info ok", KindInfo, ResponseOK},
		{"error ok", KindError, ResponseOK},
		{"question ok", KindQuestion, ResponseOK},
		{"question cancel", KindQuestion, ResponseCancel},
		{"info delete event", KindInfo, ResponseDeleteEvent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			presenter, tk := newTestPresenter(t)
			tk.response = tc.response

			result, err := presenter.Present(tc.kind, "parent", Options{Text: "message"})
			require.NoError(t, err)
			assert.Equal(t, tc.response, result.Response)
		})
	}
}

func TestMessageDialogMarkupAndText(t *testing.T) {
	presenter, tk := newTestPresenter(t)

	_, err := presenter.Present(KindError, "parent", Options{Text: "something broke"})
	require.NoError(t, err)

	builder := tk.lastBuilder()
	require.NotNil(t, builder)
	require.Len(t, builder.markups, 1)
	markup := builder.markups[0]
	assert.Contains(t, markup, `<property name="message-type">3</property>`)
	assert.Contains(t, markup, `<property name="buttons">1</property>`)
	assert.Contains(t, markup, `<property name="use-header-bar">0</property>`)

	dialog, _ := builder.Dialog("message_dialog")
	fd := dialog.(*fakeDialog)
	assert.Equal(t, "SOMETHING BROKE", fd.body, "body text passes through translation")
	assert.Equal(t, "parent", fd.parent)
	assert.True(t, fd.destroyed)
}

func TestQuestionDefaults(t *testing.T) {
	presenter, tk := newTestPresenter(t)

	_, err := presenter.Present(KindQuestion, nil, Options{})
	require.NoError(t, err)

	builder := tk.lastBuilder()
	require.NotNil(t, builder)
	assert.Contains(t, builder.markups[0], `<property name="buttons">5</property>`, "defaults to OK/Cancel")
	assert.Contains(t, builder.markups[0], `<property name="message-type">2</property>`)

	dialog, _ := builder.Dialog("message_dialog")
	assert.Equal(t, "ARE YOU SURE?", dialog.(*fakeDialog).body)
}

func TestQuestionCallerButtons(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	tk.response = ResponseYes

	result, err := presenter.Present(KindQuestion, nil, Options{Text: "overwrite?", Buttons: ButtonsYesNo})
	require.NoError(t, err)
	assert.Equal(t, ResponseYes, result.Response)
	assert.Contains(t, tk.lastBuilder().markups[0], `<property name="buttons">4</property>`)
}

func TestInputConfirmReturnsEnteredText(t *testing.T) {
	cases := []struct {
		name    string
		prefill string
		entered string
	}{
		{"edited text", "old name", "new name"},
		{"empty string", "old name", ""},
		{"unchanged prefill", "keep", "keep"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			presenter, tk := newTestPresenter(t)
			tk.response = ResponseOK
			tk.runHook = func(b *fakeBuilder) {
				b.entry("input_entry").SetText(tc.entered)
			}

			result, err := presenter.Present(KindInput, nil, Options{Text: tc.prefill})
			require.NoError(t, err)
			assert.Equal(t, ResponseOK, result.Response)
			assert.Equal(t, tc.entered, result.Text)
		})
	}
}

func TestInputCancelDropsEnteredText(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	tk.response = ResponseDeleteEvent
	tk.runHook = func(b *fakeBuilder) {
		b.entry("input_entry").SetText("typed before closing")
	}

	result, err := presenter.Present(KindInput, nil, Options{Text: "prefill"})
	require.NoError(t, err)
	assert.Equal(t, ResponseCancel, result.Response, "any non-OK response maps to the cancel sentinel")
	assert.Empty(t, result.Text)
	assert.True(t, result.Canceled())
}

func TestInputPrefillsEntry(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	seen := ""
	tk.runHook = func(b *fakeBuilder) {
		seen = b.entry("input_entry").Text()
	}

	_, err := presenter.Present(KindInput, nil, Options{Text: "prefill"})
	require.NoError(t, err)
	assert.Equal(t, "prefill", seen)
	assert.Equal(t, []string{"input_dialog"}, tk.lastBuilder().ids, "only the input dialog objects are built")
}

func TestChooserFileSelection(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "bouquet.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

	tk.chooser = &fakeChooser{response: ResponseAccept, filename: file}
	settings := &fakeSettings{dataPath: dir}

	result, err := presenter.Present(KindChooser, nil, Options{Settings: settings, Action: ChooserActionOpen})
	require.NoError(t, err)
	assert.Equal(t, ResponseAccept, result.Response)
	assert.True(t, filepath.IsAbs(result.Path))
	assert.Equal(t, file, result.Path)
	assert.False(t, strings.HasSuffix(result.Path, core.Sep))
	assert.Equal(t, dir, tk.chooser.folder, "chooser opens in the settings base directory")
	assert.True(t, tk.chooser.destroyed)
}

func TestChooserDirectorySelection(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	dir := t.TempDir()

	tk.chooser = &fakeChooser{response: ResponseAccept, filename: dir}
	result, err := presenter.Present(KindChooser, nil, Options{Settings: &fakeSettings{dataPath: dir}})
	require.NoError(t, err)
	assert.Equal(t, dir+core.Sep, result.Path, "directories end with the platform separator")
}

func TestChooserFallsBackToCurrentFolder(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	dir := t.TempDir()

	tk.chooser = &fakeChooser{response: ResponseAccept, currentFolder: dir}
	result, err := presenter.Present(KindChooser, nil, Options{Settings: &fakeSettings{dataPath: dir}})
	require.NoError(t, err)
	assert.Equal(t, dir+core.Sep, result.Path)
}

func TestChooserCancel(t *testing.T) {
	presenter, tk := newTestPresenter(t)

	tk.chooser = &fakeChooser{response: ResponseCancel, filename: "ignored"}
	result, err := presenter.Present(KindChooser, nil, Options{Settings: &fakeSettings{dataPath: t.TempDir()}})
	require.NoError(t, err)
	assert.True(t, result.Canceled())
	assert.Empty(t, result.Path)
	assert.True(t, tk.chooser.destroyed)
}

func TestChooserRequiresSettings(t *testing.T) {
	presenter, _ := newTestPresenter(t)
	_, err := presenter.Present(KindChooser, nil, Options{})
	require.Error(t, err)
}

func TestChooserWithPatterns(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	dir := t.TempDir()
	tk.chooser = &fakeChooser{response: ResponseCancel}

	_, err := presenter.ChooserWithPatterns(nil, &fakeSettings{dataPath: dir}, "Profiles", []string{"*.json", "*.xml"}, "Open file")
	require.NoError(t, err)
	require.NotNil(t, tk.chooser.filter)
	assert.Equal(t, "Profiles", tk.chooser.filter.Name)
	assert.Equal(t, []string{"*.json", "*.xml"}, tk.chooser.filter.Patterns)
	assert.Equal(t, ChooserActionOpen, tk.chooser.opts.Action)
	assert.Equal(t, "OPEN FILE", tk.chooser.opts.Title, "title passes through translation")
}

func TestAboutReturnsResponse(t *testing.T) {
	presenter, tk := newTestPresenter(t)
	tk.response = ResponseClose

	result, err := presenter.Present(KindAbout, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, ResponseClose, result.Response)
	assert.Equal(t, []string{"about_dialog"}, tk.lastBuilder().ids)
}

func TestPresentUnknownKind(t *testing.T) {
	presenter, _ := newTestPresenter(t)
	_, err := presenter.Present(Kind("bogus"), nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "input", KindInput.String())
	assert.Equal(t, "wait_dialog", KindWait.objectID())
	assert.Equal(t, "about_dialog", KindAbout.objectID())
}
