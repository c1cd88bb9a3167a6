package svgdoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCycle is returned when moving an element under itself or one of its descendants.
	ErrCycle = errors.New("svgdoc: element would become its own ancestor")
	// ErrUnknownNode is returned for invalid or removed node identifiers.
	ErrUnknownNode = errors.New("svgdoc: unknown node")
)

// NodeID identifies an element in its Document.
type NodeID int32

// NoNode is the parent of the root element.
const NoNode NodeID = -1

type node struct {
	elem     Element
	parent   NodeID
	children []NodeID
	removed  bool
}

// Document is a tree of elements, stored in a flat arena:
// parents and children are referenced by index, so that
// the tree has a single owner and no reference cycles.
type Document struct {
	nodes []node
	root  NodeID
}

// NewDocument returns a document whose root is the given element,
// usually an <svg> one.
func NewDocument(root Element) *Document {
	d := &Document{}
	d.root = d.alloc(root, NoNode)
	return d
}

func (d *Document) alloc(e Element, parent NodeID) NodeID {
	d.nodes = append(d.nodes, node{elem: e, parent: parent})
	return NodeID(len(d.nodes) - 1)
}

// Root returns the root element.
func (d *Document) Root() NodeID { return d.root }

// Valid is true if id refers to an element in the document.
func (d *Document) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(d.nodes) && !d.nodes[id].removed
}

func (d *Document) check(id NodeID) error {
	if !d.Valid(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return nil
}

// Element returns the element with the given id, which may be modified in place,
// or nil if id is not valid.
func (d *Document) Element(id NodeID) *Element {
	if !d.Valid(id) {
		return nil
	}
	return &d.nodes[id].elem
}

// Parent returns the parent of id, or NoNode for the root.
func (d *Document) Parent(id NodeID) NodeID {
	if !d.Valid(id) {
		return NoNode
	}
	return d.nodes[id].parent
}

// Children returns the children of id, in paint order.
// The returned slice is a copy.
func (d *Document) Children(id NodeID) []NodeID {
	if !d.Valid(id) {
		return nil
	}
	return append([]NodeID(nil), d.nodes[id].children...)
}

// AddChild appends e as last child of parent.
func (d *Document) AddChild(parent NodeID, e Element) (NodeID, error) {
	if err := d.check(parent); err != nil {
		return NoNode, err
	}
	return d.Insert(parent, len(d.nodes[parent].children), e)
}

// Insert adds e as child of parent, at position index (clamped
// to the valid range).
func (d *Document) Insert(parent NodeID, index int, e Element) (NodeID, error) {
	if err := d.check(parent); err != nil {
		return NoNode, err
	}
	id := d.alloc(e, parent)
	d.attach(parent, index, id)
	return id, nil
}

func (d *Document) attach(parent NodeID, index int, id NodeID) {
	children := d.nodes[parent].children
	if index < 0 || index > len(children) {
		index = len(children)
	}
	children = append(children, NoNode)
	copy(children[index+1:], children[index:])
	children[index] = id
	d.nodes[parent].children = children
	d.nodes[id].parent = parent
}

func (d *Document) detach(id NodeID) {
	parent := d.nodes[id].parent
	if parent == NoNode {
		return
	}
	children := d.nodes[parent].children
	for i, c := range children {
		if c == id {
			d.nodes[parent].children = append(children[:i], children[i+1:]...)
			break
		}
	}
	d.nodes[id].parent = NoNode
}

// IsAncestor is true if anc is id or one of its ancestors.
func (d *Document) IsAncestor(anc, id NodeID) bool {
	for ; id != NoNode; id = d.Parent(id) {
		if id == anc {
			return true
		}
	}
	return false
}

// Reparent moves id (with its subtree) under newParent, at position index.
// Moving an element under itself or one of its descendants fails with ErrCycle.
func (d *Document) Reparent(id, newParent NodeID, index int) error {
	if err := d.check(id); err != nil {
		return err
	}
	if err := d.check(newParent); err != nil {
		return err
	}
	if id == d.root || d.IsAncestor(id, newParent) {
		return ErrCycle
	}
	d.detach(id)
	d.attach(newParent, index, id)
	return nil
}

// Remove detaches id and its subtree from the document.
// The root may not be removed.
func (d *Document) Remove(id NodeID) error {
	if err := d.check(id); err != nil {
		return err
	}
	if id == d.root {
		return fmt.Errorf("svgdoc: the root element can't be removed")
	}
	d.detach(id)
	d.Walk(id, func(n NodeID, _ int) bool {
		d.nodes[n].removed = true
		return true
	})
	return nil
}

// Walk visits id and its descendants, in document order.
// Returning false from fn skips the children of the current node.
func (d *Document) Walk(id NodeID, fn func(id NodeID, depth int) bool) {
	if !d.Valid(id) {
		return
	}
	d.walk(id, 0, fn)
}

func (d *Document) walk(id NodeID, depth int, fn func(NodeID, int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, c := range d.nodes[id].children {
		d.walk(c, depth+1, fn)
	}
}

// Lookup returns the element with the given 'id' attribute, or NoNode.
func (d *Document) Lookup(xmlID string) NodeID {
	found := NoNode
	d.Walk(d.root, func(n NodeID, _ int) bool {
		if found != NoNode {
			return false
		}
		if d.nodes[n].elem.ID() == xmlID {
			found = n
			return false
		}
		return true
	})
	return found
}

// Path returns a path-like identity for the element, such as
// "/svg/g[1]/rect[0]", where each index is the position among the siblings.
func (d *Document) Path(id NodeID) string {
	if !d.Valid(id) {
		return ""
	}
	var chunks []string
	for n := id; n != NoNode; n = d.nodes[n].parent {
		tag := d.nodes[n].elem.Tag
		parent := d.nodes[n].parent
		if parent == NoNode {
			chunks = append(chunks, tag)
			continue
		}
		for i, c := range d.nodes[parent].children {
			if c == n {
				chunks = append(chunks, fmt.Sprintf("%s[%d]", tag, i))
				break
			}
		}
	}
	for i, j := 0, len(chunks)-1; i < j; i, j = i+1, j-1 {
		chunks[i], chunks[j] = chunks[j], chunks[i]
	}
	return "/" + strings.Join(chunks, "/")
}

// Ancestors returns the ancestors of id, from its parent up to the root.
func (d *Document) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for n := d.Parent(id); n != NoNode; n = d.Parent(n) {
		out = append(out, n)
	}
	return out
}
