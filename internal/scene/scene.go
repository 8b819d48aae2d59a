// Package scene is the render-parent side of the display tree: a flat container of
// drawable nodes with add/remove-child and destroy semantics.
package scene

import (
	"errors"
	"image"
)

// ErrDestroyed is returned when a destroyed node is attached to a container.
var ErrDestroyed = errors.New("scene: node is destroyed")

// Node is embedded by every drawable that can live in a Container.
type Node struct {
	parent    *Container
	destroyed bool
}

// Child is anything embedding a Node.
type Child interface {
	sceneNode() *Node
}

func (n *Node) sceneNode() *Node { return n }

// Parent returns the container holding the node, or nil when detached.
func (n *Node) Parent() *Container { return n.parent }

// Destroyed reports whether Destroy was called.
func (n *Node) Destroyed() bool { return n.destroyed }

// Destroy marks the node as dead. A destroyed node can never be attached again.
// Detaching from the parent is the caller's job (see Container.RemoveChild).
func (n *Node) Destroy() { n.destroyed = true }

// Container keeps children in paint order: first added is drawn first.
type Container struct {
	Node

	// Mask clips everything drawn from this container. Empty means no clipping.
	Mask     image.Rectangle
	children []Child
}

// NewContainer returns an empty container clipped to mask.
func NewContainer(mask image.Rectangle) *Container {
	return &Container{Mask: mask}
}

// AddChild appends ch on top of the paint order. A child that already belongs to
// another container is moved.
func (c *Container) AddChild(ch Child) error {
	n := ch.sceneNode()
	if n.destroyed || c.destroyed {
		return ErrDestroyed
	}
	if n.parent != nil {
		n.parent.RemoveChild(ch)
	}
	n.parent = c
	c.children = append(c.children, ch)
	return nil
}

// RemoveChild detaches ch. It reports false if ch was not a child of c.
func (c *Container) RemoveChild(ch Child) bool {
	n := ch.sceneNode()
	for i, existing := range c.children {
		if existing.sceneNode() == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			n.parent = nil
			return true
		}
	}
	return false
}

// Contains reports whether ch is a direct child of c.
func (c *Container) Contains(ch Child) bool {
	n := ch.sceneNode()
	for _, existing := range c.children {
		if existing.sceneNode() == n {
			return true
		}
	}
	return false
}

// Children returns a snapshot of the children in paint order.
func (c *Container) Children() []Child {
	out := make([]Child, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// Destroy detaches and destroys every child, then the container itself.
func (c *Container) Destroy() {
	for _, ch := range c.children {
		n := ch.sceneNode()
		n.parent = nil
		n.destroyed = true
	}
	c.children = nil
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.Node.Destroy()
}
