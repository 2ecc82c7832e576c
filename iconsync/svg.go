package iconsync

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// ErrMalformedSVG is returned when an icon source cannot be parsed as XML.
var ErrMalformedSVG = errors.New("malformed svg")

// metadataTags are non-rendering descriptive elements that never belong in
// an inlined icon. Matched against the namespace-stripped tag name.
var metadataTags = map[string]bool{
	"title":    true,
	"desc":     true,
	"metadata": true,
}

// interTagWhitespace matches whitespace runs strictly between a closing '>'
// and the next opening '<'.
var interTagWhitespace = regexp.MustCompile(`>\s*<`)

// Normalize canonicalizes a single SVG icon so it can be inlined and themed
// via the surrounding text color. It strips descriptive metadata elements,
// rebuilds the root attributes to a fixed 16x16 currentColor set, removes
// hard-coded fill/stroke colors and inline styles, and collapses inter-tag
// whitespace to single newlines.
//
// The transform is deterministic and idempotent: normalizing an already
// normalized icon yields the same bytes.
func Normalize(raw string) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	if err := doc.ReadFromString(raw); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedSVG, err)
	}

	root, err := documentRoot(doc)
	if err != nil {
		return "", err
	}

	removeMetadataElements(root)

	viewBox := root.SelectAttrValue("viewBox", "0 0 16 16")
	root.Attr = nil
	root.CreateAttr("xmlns", svgNamespace)
	root.CreateAttr("width", "16")
	root.CreateAttr("height", "16")
	root.CreateAttr("viewBox", viewBox)
	root.CreateAttr("fill", "currentColor")
	root.CreateAttr("aria-hidden", "true")
	root.CreateAttr("focusable", "false")

	// Serialize in the default-namespace tag form even when the source
	// prefixed its elements.
	for _, el := range collectElements(root) {
		el.Space = ""
		stripColorAttrs(el)
	}

	out := etree.NewDocument()
	out.SetRoot(root.Copy())

	svg, err := out.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serializing svg: %w", err)
	}

	svg = interTagWhitespace.ReplaceAllString(svg, ">\n<")

	return strings.TrimSpace(svg), nil
}

// documentRoot returns the single root element of doc. A document with no
// element, more than one top-level element, or stray non-whitespace text
// outside the root is not a well-formed SVG source.
func documentRoot(doc *etree.Document) (*etree.Element, error) {
	var root *etree.Element
	for _, token := range doc.Child {
		switch child := token.(type) {
		case *etree.Element:
			if root != nil {
				return nil, fmt.Errorf("%w: multiple root elements", ErrMalformedSVG)
			}
			root = child
		case *etree.CharData:
			if strings.TrimSpace(child.Data) != "" {
				return nil, fmt.Errorf("%w: text outside root element", ErrMalformedSVG)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedSVG)
	}

	return root, nil
}

// removeMetadataElements detaches every descendant whose tag is in
// metadataTags, discarding the whole subtree. Matches are collected before
// any detach so removal never walks a tree that is mutating under it.
func removeMetadataElements(root *etree.Element) {
	type match struct {
		parent *etree.Element
		el     *etree.Element
	}

	var matches []match
	for _, el := range collectElements(root) {
		if el != root && metadataTags[el.Tag] {
			matches = append(matches, match{parent: el.Parent(), el: el})
		}
	}

	for _, m := range matches {
		if m.parent != nil {
			m.parent.RemoveChild(m.el)
		}
	}
}

// collectElements returns root and all of its descendant elements.
func collectElements(root *etree.Element) []*etree.Element {
	elements := []*etree.Element{root}
	for i := 0; i < len(elements); i++ {
		elements = append(elements, elements[i].ChildElements()...)
	}

	return elements
}

// stripColorAttrs drops hard-coded fill/stroke colors so the icon inherits
// the surrounding text color. Only the values "none" and "currentColor"
// (any case, surrounding whitespace ignored) survive. Inline styles are
// removed unconditionally.
func stripColorAttrs(el *etree.Element) {
	for _, key := range []string{"fill", "stroke"} {
		attr := el.SelectAttr(key)
		if attr == nil {
			continue
		}

		value := strings.ToLower(strings.TrimSpace(attr.Value))
		if value != "none" && value != "currentcolor" {
			el.RemoveAttr(key)
		}
	}

	el.RemoveAttr("style")
}
