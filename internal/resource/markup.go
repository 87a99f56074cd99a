// Package resource loads and caches the UI markup files dialogs are built
// from. Markup is a small interface/object/property format: objects carry a
// class and id, properties may be flagged translatable.
package resource

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Interface is the root node of a markup document.
type Interface struct {
	XMLName xml.Name `xml:"interface"`
	Objects []Object `xml:"object"`
}

// Object describes a widget to instantiate: a dialog, entry, label or spinner.
type Object struct {
	Class      string     `xml:"class,attr"`
	ID         string     `xml:"id,attr,omitempty"`
	Properties []Property `xml:"property"`
	Children   []Child    `xml:"child"`
}

// Child wraps a nested object.
type Child struct {
	Object *Object `xml:"object"`
}

// Property is a named value on an object. Translatable properties get their
// text substituted by the translation fallback on Windows.
type Property struct {
	Name         string `xml:"name,attr"`
	Translatable string `xml:"translatable,attr,omitempty"`
	Text         string `xml:",chardata"`
}

// Parse decodes a markup document.
func Parse(markup string) (*Interface, error) {
	doc := &Interface{}
	if err := xml.Unmarshal([]byte(markup), doc); err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return doc, nil
}

// Object returns the object with the given id, searching nested children.
func (i *Interface) Object(id string) *Object {
	if i == nil {
		return nil
	}
	for idx := range i.Objects {
		if found := i.Objects[idx].find(id); found != nil {
			return found
		}
	}
	return nil
}

func (o *Object) find(id string) *Object {
	if o == nil {
		return nil
	}
	if o.ID == id {
		return o
	}
	for _, child := range o.Children {
		if found := child.Object.find(id); found != nil {
			return found
		}
	}
	return nil
}

// Property returns the trimmed value of a named property.
func (o *Object) Property(name string) (string, bool) {
	if o == nil {
		return "", false
	}
	for _, p := range o.Properties {
		if p.Name == name {
			return strings.TrimSpace(p.Text), true
		}
	}
	return "", false
}

// TranslateMarkup parses markup and substitutes the translation of every
// property flagged translatable="yes", clearing the flag so builders do not
// translate the text a second time. The toolkit performs this step itself on
// platforms with a native catalog; on Windows it is done here.
func TranslateMarkup(markup string, translate func(string) string) (string, error) {
	doc, err := Parse(markup)
	if err != nil {
		return "", err
	}
	for idx := range doc.Objects {
		translateObject(&doc.Objects[idx], translate)
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode markup: %w", err)
	}
	return xml.Header + string(out), nil
}

func translateObject(o *Object, translate func(string) string) {
	if o == nil {
		return
	}
	for idx := range o.Properties {
		p := &o.Properties[idx]
		if p.Translatable == "yes" {
			p.Text = translate(strings.TrimSpace(p.Text))
			p.Translatable = ""
		}
	}
	for _, child := range o.Children {
		translateObject(child.Object, translate)
	}
}
