package fynetk

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"profile-editor/internal/resource"
	"profile-editor/internal/ui"
)

// Builder instantiates Fyne widgets from dialog markup and hands them out
// by object id.
type Builder struct {
	translate func(string) string
	objects   map[string]any
}

// AddFromString instantiates every object in the markup.
func (b *Builder) AddFromString(markup string) error {
	return b.add(markup, nil)
}

// AddObjectsFromString instantiates only the named objects.
func (b *Builder) AddObjectsFromString(markup string, ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("no object ids given")
	}
	return b.add(markup, ids)
}

func (b *Builder) add(markup string, ids []string) error {
	doc, err := resource.Parse(markup)
	if err != nil {
		return err
	}
	if ids == nil {
		for idx := range doc.Objects {
			if _, err := b.build(&doc.Objects[idx]); err != nil {
				return err
			}
		}
		return nil
	}
	for _, id := range ids {
		obj := doc.Object(id)
		if obj == nil {
			return fmt.Errorf("markup has no object %q", id)
		}
		if _, err := b.build(obj); err != nil {
			return err
		}
	}
	return nil
}

// Dialog returns the built dialog with the given id.
func (b *Builder) Dialog(id string) (ui.Dialog, error) {
	if d, ok := b.objects[id].(*builderDialog); ok {
		return d, nil
	}
	return nil, fmt.Errorf("builder has no dialog %q", id)
}

// Entry returns the built entry with the given id.
func (b *Builder) Entry(id string) (ui.Entry, error) {
	if e, ok := b.objects[id].(*entry); ok {
		return e, nil
	}
	return nil, fmt.Errorf("builder has no entry %q", id)
}

// Label returns the built label with the given id.
func (b *Builder) Label(id string) (ui.Label, error) {
	if l, ok := b.objects[id].(*label); ok {
		return l, nil
	}
	return nil, fmt.Errorf("builder has no label %q", id)
}

func (b *Builder) build(obj *resource.Object) (fyne.CanvasObject, error) {
	switch obj.Class {
	case "Entry":
		e := &entry{w: widget.NewEntry()}
		if text, ok := b.propertyText(obj, "text"); ok {
			e.SetText(text)
		}
		b.register(obj.ID, e)
		return e.w, nil
	case "Label":
		text, _ := b.propertyText(obj, "label")
		l := &label{w: widget.NewLabel(text)}
		b.register(obj.ID, l)
		return l.w, nil
	case "Spinner":
		spinner := widget.NewProgressBarInfinite()
		b.register(obj.ID, spinner)
		return spinner, nil
	case "Dialog", "MessageDialog", "AboutDialog":
		d, err := b.buildDialog(obj)
		if err != nil {
			return nil, err
		}
		b.register(obj.ID, d)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown object class %q", obj.Class)
	}
}

func (b *Builder) buildDialog(obj *resource.Object) (*builderDialog, error) {
	d := &builderDialog{}
	if title, ok := b.propertyText(obj, "title"); ok {
		d.title = title
	}
	if value, ok := obj.Property("buttons"); ok {
		buttons, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("bad buttons value %q on %s: %w", value, obj.ID, err)
		}
		d.buttons = ui.ButtonsType(buttons)
	}
	if value, ok := obj.Property("message-type"); ok {
		messageType, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("bad message-type value %q on %s: %w", value, obj.ID, err)
		}
		d.messageType = ui.MessageType(messageType)
	}
	if obj.Class == "AboutDialog" {
		d.content = append(d.content, b.aboutContent(obj)...)
	}
	for _, child := range obj.Children {
		if child.Object == nil {
			continue
		}
		canvas, err := b.build(child.Object)
		if err != nil {
			return nil, err
		}
		if canvas != nil {
			d.content = append(d.content, canvas)
		}
	}
	return d, nil
}

func (b *Builder) aboutContent(obj *resource.Object) []fyne.CanvasObject {
	var content []fyne.CanvasObject
	if name, ok := b.propertyText(obj, "program-name"); ok {
		title := widget.NewLabel(name)
		title.TextStyle = fyne.TextStyle{Bold: true}
		content = append(content, title)
	}
	if version, ok := b.propertyText(obj, "version"); ok {
		content = append(content, widget.NewLabel(version))
	}
	if comments, ok := b.propertyText(obj, "comments"); ok {
		content = append(content, widget.NewLabel(comments))
	}
	if copyrightText, ok := b.propertyText(obj, "copyright"); ok {
		content = append(content, widget.NewLabel(copyrightText))
	}
	return content
}

// propertyText resolves a property value, applying the translation domain to
// properties flagged translatable.
func (b *Builder) propertyText(obj *resource.Object, name string) (string, bool) {
	for _, p := range obj.Properties {
		if p.Name != name {
			continue
		}
		text, _ := obj.Property(name)
		if p.Translatable == "yes" && b.translate != nil {
			return b.translate(text), true
		}
		return text, true
	}
	return "", false
}

func (b *Builder) register(id string, object any) {
	if id != "" {
		b.objects[id] = object
	}
}

type entry struct {
	w *widget.Entry
}

func (e *entry) Text() string {
	return e.w.Text
}

func (e *entry) SetText(text string) {
	e.w.SetText(text)
}

type label struct {
	w *widget.Label
}

func (l *label) Text() string {
	return l.w.Text
}

func (l *label) SetText(text string) {
	l.w.SetText(text)
}
