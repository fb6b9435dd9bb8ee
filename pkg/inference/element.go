/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: element.go
Description: Element builder for record inference. Wraps a resolved tag, its computed
properties and built children into an immutable InferredElement, and derives a textual
representation from the descriptor display name when the catalog supplies none.
*/

package inference

import (
	"fmt"
	"regexp"
	"strings"
)

// Props are the properties passed to a descriptor when building an element
type Props struct {
	Source    string `json:"source,omitempty"`
	Reference string `json:"reference,omitempty"`
	Required  bool   `json:"required,omitempty"`
	Child     *Props `json:"child,omitempty"`
}

// Node is the element produced by NodeBuilder
type Node struct {
	Component string        `json:"component"`
	Props     Props         `json:"props"`
	Children  []interface{} `json:"children,omitempty"`
}

// NodeBuilder returns a BuildFunc producing Node elements for a component
func NodeBuilder(component string) BuildFunc {
	return func(props Props, children []interface{}) interface{} {
		return Node{Component: component, Props: props, Children: children}
	}
}

// InferredElement is the immutable result of resolving one field
type InferredElement struct {
	tag            Tag
	props          Props
	element        interface{}
	hasElement     bool
	name           string
	representation string
	children       []string
}

// NewInferredElement builds an element from a descriptor directly. It is used to wrap
// inferred elements in a container such as a table or a form.
func NewInferredElement(d Descriptor, props Props, children []*InferredElement) *InferredElement {
	if d.Build == nil {
		d.Build = NodeBuilder(d.Name)
	}
	return build("", d, props, children)
}

// emptyElement is the "no element" state of a suppressed field
func emptyElement(tag Tag, props Props) *InferredElement {
	return &InferredElement{tag: tag, props: props}
}

// build invokes the descriptor with the props and the elements of the non-empty children
func build(tag Tag, d Descriptor, props Props, children []*InferredElement) *InferredElement {
	var elements []interface{}
	var representations []string
	for _, child := range children {
		if child == nil || !child.HasElement() {
			continue
		}
		elements = append(elements, child.Element())
		representations = append(representations, child.Representation())
	}

	ie := &InferredElement{
		tag:        tag,
		props:      props,
		element:    d.Build(props, elements),
		hasElement: true,
		name:       d.Name,
		children:   representations,
	}
	if d.Represent != nil {
		ie.representation = d.Represent(props, representations)
	}
	return ie
}

// HasElement reports whether an element was produced
func (ie *InferredElement) HasElement() bool {
	return ie != nil && ie.hasElement
}

// Element returns the built element, or nil when the field was suppressed
func (ie *InferredElement) Element() interface{} {
	if ie == nil {
		return nil
	}
	return ie.element
}

// Tag returns the tag the element was built for
func (ie *InferredElement) Tag() Tag {
	if ie == nil {
		return ""
	}
	return ie.tag
}

// Props returns the properties the element was built with
func (ie *InferredElement) Props() Props {
	if ie == nil {
		return Props{}
	}
	return ie.props
}

// Representation returns the catalog-provided representation or a derived one.
// Suppressed elements have an empty representation.
func (ie *InferredElement) Representation() string {
	if !ie.HasElement() {
		return ""
	}
	if ie.representation != "" {
		return ie.representation
	}
	return derive(DisplayName(ie.name), ie.tag, ie.props, ie.children)
}

// String implements fmt.Stringer
func (ie *InferredElement) String() string {
	return ie.Representation()
}

var pureName = regexp.MustCompile(`^pure\((.+)\)$`)

// DisplayName unwraps names produced by a pure() wrapper: pure(TextField) -> TextField
func DisplayName(name string) string {
	if m := pureName.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// derive builds a tag-like representation: <Name source="x" />
func derive(name string, tag Tag, props Props, children []string) string {
	var open strings.Builder
	open.WriteString("<")
	open.WriteString(name)
	if props.Source != "" {
		open.WriteString(fmt.Sprintf(" source=%q", props.Source))
	}
	if props.Reference != "" {
		open.WriteString(fmt.Sprintf(" reference=%q", props.Reference))
	}

	if len(children) == 0 {
		open.WriteString(" />")
		return open.String()
	}
	open.WriteString(">")
	closing := fmt.Sprintf("</%s>", name)

	if tag == TagReference || tag == TagReferenceArray {
		return open.String() + strings.Join(children, "") + closing
	}

	lines := []string{open.String()}
	for _, child := range children {
		for _, line := range strings.Split(child, "\n") {
			lines = append(lines, "  "+line)
		}
	}
	lines = append(lines, closing)
	return strings.Join(lines, "\n")
}
