// Package schema describes which model elements are objects, limits and
// blocks, and where text is allowed.
package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/blockedit/internal/engine/tree"
)

// RootName is the element name of model document roots.
const RootName = "$root"

// ErrAlreadyRegistered is returned when an element name is registered twice.
var ErrAlreadyRegistered = errors.New("element already registered")

// Definition describes the behavior of one model element name.
type Definition struct {
	// IsObject marks self-contained units the caret cannot enter through
	// normal navigation.
	IsObject bool
	// IsLimit marks boundaries that scope selection and navigation.
	IsLimit bool
	// IsBlock marks block-level containers.
	IsBlock bool
	// AllowText permits text directly inside the element.
	AllowText bool
}

// Schema is a registry of element definitions.
type Schema struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// New creates a schema with the root element registered.
func New() *Schema {
	s := &Schema{defs: make(map[string]Definition)}
	s.defs[RootName] = Definition{IsLimit: true}
	return s
}

// Register adds a definition.
func (s *Schema) Register(name string, def Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.defs[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	s.defs[name] = def
	return nil
}

// Extend updates an existing definition, registering it if needed.
func (s *Schema) Extend(name string, fn func(*Definition)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := s.defs[name]
	fn(&def)
	s.defs[name] = def
}

// Definition returns the definition for name.
func (s *Schema) Definition(name string) (Definition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.defs[name]
	return def, ok
}

// Names returns all registered names in sorted order.
func (s *Schema) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Schema) lookup(n *tree.Node) Definition {
	if !n.IsElement() {
		return Definition{}
	}
	def, _ := s.Definition(n.Name())
	return def
}

// IsObject returns true if n is an object element.
func (s *Schema) IsObject(n *tree.Node) bool {
	return s.lookup(n).IsObject
}

// IsLimit returns true if n is a limit element. Document roots are always
// limits.
func (s *Schema) IsLimit(n *tree.Node) bool {
	if n.IsElement() && n.IsRoot() {
		return true
	}
	return s.lookup(n).IsLimit
}

// IsBlock returns true if n is a block element.
func (s *Schema) IsBlock(n *tree.Node) bool {
	return s.lookup(n).IsBlock
}

// AllowsText returns true if text may be placed directly inside n.
func (s *Schema) AllowsText(n *tree.Node) bool {
	return s.lookup(n).AllowText
}

// CheckText returns true if p is a valid caret position.
func (s *Schema) CheckText(p tree.Position) bool {
	if p.IsZero() {
		return false
	}
	return s.AllowsText(p.Container())
}

// LimitElement returns the nearest limit element containing every range of
// the selection. It falls back to the root.
func (s *Schema) LimitElement(sel *tree.Selection) *tree.Node {
	var el *tree.Node
	for _, r := range sel.Ranges() {
		ancestor := r.CommonAncestor()
		if el == nil {
			el = ancestor
			continue
		}
		el = tree.CommonAncestor(el, ancestor)
	}
	if el == nil {
		return nil
	}
	for !s.IsLimit(el) && el.Parent() != nil {
		el = el.Parent()
	}
	return el
}
