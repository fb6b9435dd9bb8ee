/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: catalog.go
Description: Type catalog for record inference. Maps every tag to a component descriptor
with three explicit states: present, absent (fall back to string) and disabled (suppress
the field).
*/

package inference

import (
	"fmt"
	"sort"
)

// BuildFunc builds the caller-opaque element for a descriptor
type BuildFunc func(props Props, children []interface{}) interface{}

// RepresentFunc renders the textual representation of an element
type RepresentFunc func(props Props, children []string) string

// Descriptor describes the component a tag maps to
type Descriptor struct {
	Name      string        // display name used in derived representations
	Build     BuildFunc     // defaults to NodeBuilder(Name)
	Represent RepresentFunc // optional
}

// NewDescriptor creates a descriptor building Node elements
func NewDescriptor(name string) Descriptor {
	return Descriptor{Name: name, Build: NodeBuilder(name)}
}

// EntryState tells whether a catalog defines, omits or disables a tag
type EntryState int

const (
	EntryAbsent EntryState = iota
	EntryPresent
	EntryDisabled
)

// String returns the state name
func (s EntryState) String() string {
	switch s {
	case EntryPresent:
		return "present"
	case EntryDisabled:
		return "disabled"
	default:
		return "absent"
	}
}

type catalogEntry struct {
	state      EntryState
	descriptor Descriptor
}

// Catalog maps tags to descriptors. It is built by the caller and only read by the engine.
type Catalog struct {
	entries map[Tag]catalogEntry
}

// NewCatalog creates an empty catalog where every tag is absent
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[Tag]catalogEntry)}
}

// Set maps a tag to a descriptor
func (c *Catalog) Set(tag Tag, d Descriptor) *Catalog {
	if d.Build == nil {
		d.Build = NodeBuilder(d.Name)
	}
	c.entries[tag] = catalogEntry{state: EntryPresent, descriptor: d}
	return c
}

// Disable marks a tag as explicitly disabled: fields resolving to it produce no element
func (c *Catalog) Disable(tag Tag) *Catalog {
	c.entries[tag] = catalogEntry{state: EntryDisabled}
	return c
}

// Remove makes a tag absent again
func (c *Catalog) Remove(tag Tag) *Catalog {
	delete(c.entries, tag)
	return c
}

// Lookup returns the descriptor and state for a tag. A nil catalog has no entries.
func (c *Catalog) Lookup(tag Tag) (Descriptor, EntryState) {
	if c == nil {
		return Descriptor{}, EntryAbsent
	}
	entry, ok := c.entries[tag]
	if !ok {
		return Descriptor{}, EntryAbsent
	}
	return entry.descriptor, entry.state
}

// State returns the state of a tag
func (c *Catalog) State(tag Tag) EntryState {
	_, state := c.Lookup(tag)
	return state
}

// Clone returns an independent copy of the catalog
func (c *Catalog) Clone() *Catalog {
	clone := NewCatalog()
	if c == nil {
		return clone
	}
	for tag, entry := range c.entries {
		clone.entries[tag] = entry
	}
	return clone
}

// Validate checks that every entry uses a known tag and that present descriptors carry a
// display name. Call it once after building the catalog; the engine never does.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("catalog is nil")
	}

	tags := make([]string, 0, len(c.entries))
	for tag := range c.entries {
		tags = append(tags, string(tag))
	}
	sort.Strings(tags)

	for _, name := range tags {
		tag := Tag(name)
		if !tag.Valid() {
			return fmt.Errorf("unknown tag in catalog: %q", name)
		}
		entry := c.entries[tag]
		if entry.state == EntryPresent && entry.descriptor.Name == "" {
			return fmt.Errorf("descriptor for tag %q has no display name", name)
		}
	}
	return nil
}
