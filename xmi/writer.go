// Package xmi builds and renders XMI 2.5.1 documents: a tree of typed,
// identity-bearing elements assembled bottom-up and serialized with
// deterministic ordering. Two namespace profiles are supported, one for
// Eclipse Papyrus and one for MagicDraw.
package xmi

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Writer creates documents under a fixed namespace profile.
type Writer struct {
	format Format
	umlNS  string
}

// NewWriter returns a Writer for the given namespace profile, or an
// error for an unrecognized one.
func NewWriter(format Format) (*Writer, error) {
	f, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	return &Writer{format: f, umlNS: f.umlNamespace()}, nil
}

// Format returns the writer's namespace profile.
func (w *Writer) Format() Format { return w.format }

// NewID allocates a fresh opaque identifier. Identifiers are unique
// within a process and never reused.
func NewID() string {
	return uuid.NewString()
}

// Document is one XMI document under construction. Every identifier
// allocated for it is recorded so cross-references can be validated
// before they are emitted.
type Document struct {
	Root  *Element
	Model *Element

	writer *Writer
	ids    map[string]struct{}
}

// NewDocument creates a document holding a single named uml:Model.
func (w *Writer) NewDocument(modelName string) *Document {
	root := &Element{Tag: "xmi:XMI"}
	root.SetAttr("xmlns:xmi", XMINamespace)
	root.SetAttr("xmlns:uml", w.umlNS)
	root.SetAttr("xmi:version", "2.5.1")

	doc := &Document{Root: root, writer: w, ids: make(map[string]struct{})}

	model := &Element{Tag: "uml:Model"}
	model.SetAttr("xmi:id", doc.newID())
	model.SetAttr("name", modelName)
	root.Append(model)
	doc.Model = model

	return doc
}

func (d *Document) newID() string {
	id := NewID()
	d.ids[id] = struct{}{}
	return id
}

// RegisterID records an externally allocated identifier (stereotype
// applications allocate their own prefixed ids).
func (d *Document) RegisterID(id string) {
	d.ids[id] = struct{}{}
}

// Has reports whether id was allocated for this document. Emitting a
// cross-reference to an id for which Has is false would produce a
// dangling reference.
func (d *Document) Has(id string) bool {
	_, ok := d.ids[id]
	return ok
}

// RequireID guards every cross-reference emission. A miss is a
// structural-invariant violation, not a recoverable condition.
func (d *Document) RequireID(context, id string) error {
	if !d.Has(id) {
		return fmt.Errorf("xmi: %s references unknown element id %q", context, id)
	}
	return nil
}

// CreatePackagedElement appends a packagedElement of the given UML type
// under parent and returns it with its freshly allocated id.
func (d *Document) CreatePackagedElement(parent *Element, umlType, name string, attrs ...Attr) (*Element, string) {
	e := &Element{Tag: "packagedElement"}
	id := d.newID()
	e.SetAttr("xmi:type", "uml:"+umlType)
	e.SetAttr("xmi:id", id)
	e.SetAttr("name", name)
	for _, a := range attrs {
		e.SetAttr(a.Key, a.Value)
	}
	parent.Append(e)
	return e, id
}

// CreateOwnedElement appends a non-package-member child (operations,
// attributes, fragments, messages, lifelines, ends) under parent and
// returns it with its freshly allocated id.
func (d *Document) CreateOwnedElement(parent *Element, tag string, attrs ...Attr) (*Element, string) {
	e := &Element{Tag: tag}
	id := d.newID()
	e.SetAttr("xmi:id", id)
	for _, a := range attrs {
		e.SetAttr(a.Key, a.Value)
	}
	parent.Append(e)
	return e, id
}

// CreatePackage appends a uml:Package under parent.
func (d *Document) CreatePackage(parent *Element, name string) (*Element, string) {
	return d.CreatePackagedElement(parent, "Package", name)
}

// CreateUsage appends a uml:Usage dependency with client and supplier
// references. Both referenced ids must already exist in the document.
func (d *Document) CreateUsage(parent *Element, name, clientID, supplierID string) (*Element, string, error) {
	if err := d.RequireID("usage "+name, clientID); err != nil {
		return nil, "", err
	}
	if err := d.RequireID("usage "+name, supplierID); err != nil {
		return nil, "", err
	}

	usage, id := d.CreatePackagedElement(parent, "Usage", name)

	client := &Element{Tag: "client"}
	client.SetAttr("xmi:idref", clientID)
	usage.Append(client)

	supplier := &Element{Tag: "supplier"}
	supplier.SetAttr("xmi:idref", supplierID)
	usage.Append(supplier)

	return usage, id, nil
}

// CreateInterface appends a uml:Interface carrying one public
// ownedOperation per name, in the given order.
func (d *Document) CreateInterface(parent *Element, name string, operations []string) (*Element, string) {
	iface, id := d.CreatePackagedElement(parent, "Interface", name)
	for _, op := range operations {
		d.CreateOwnedElement(iface, "ownedOperation",
			Attr{"name", op},
			Attr{"visibility", "public"},
		)
	}
	return iface, id
}

// CreateInterfaceRealization appends a uml:InterfaceRealization with
// client, supplier and contract references. Both referenced ids must
// already exist in the document.
func (d *Document) CreateInterfaceRealization(parent *Element, name, clientID, supplierID string) (*Element, string, error) {
	if err := d.RequireID("realization "+name, clientID); err != nil {
		return nil, "", err
	}
	if err := d.RequireID("realization "+name, supplierID); err != nil {
		return nil, "", err
	}

	realization, id := d.CreatePackagedElement(parent, "InterfaceRealization", name)

	client := &Element{Tag: "client"}
	client.SetAttr("xmi:idref", clientID)
	realization.Append(client)

	supplier := &Element{Tag: "supplier"}
	supplier.SetAttr("xmi:idref", supplierID)
	realization.Append(supplier)

	contract := &Element{Tag: "contract"}
	contract.SetAttr("xmi:idref", supplierID)
	realization.Append(contract)

	return realization, id, nil
}

// AddComment attaches a human-readable ownedComment child to element.
func (d *Document) AddComment(element *Element, text string) *Element {
	comment := &Element{Tag: "ownedComment"}
	comment.SetAttr("xmi:id", d.newID())

	body := &Element{Tag: "body", Text: text}
	comment.Append(body)

	element.Append(comment)
	return comment
}

// Render serializes the document: an XML declaration followed by the
// element tree with two-space indentation, children in insertion order.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n")
	d.Root.render(&b, 0)
	return strings.TrimSuffix(b.String(), "\n")
}
