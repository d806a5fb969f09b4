package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Node is one object of the scene tree. Components are plain optional
// fields instead of a reflection-based lookup: the converter asks
// "is there a collider" by checking Collider != nil.
type Node struct {
	Name  string
	Tag   Tag
	Layer int

	// local transform, relative to parent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	Collider *Collider
	Renderer *Renderer
	Goal     *GoalMarker
	Spawn    *SpawnMarker
	Avatar   *AvatarMarker

	parent   *Node
	children []*Node
}

func New(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

// SetParent detaches the node from its current parent and attaches it
// as the last child of p. p == nil leaves the node as a detached root.
func (n *Node) SetParent(p *Node) {
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = p
	if p != nil {
		p.children = append(p.children, n)
	}
}

// Destroy detaches the node from the tree. The engine would also free
// its resources; here detaching is all that is observable.
func (n *Node) Destroy() {
	n.SetParent(nil)
}

// DestroyChildren tears down every immediate child of the node.
func (n *Node) DestroyChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) removeChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Instantiate deep-clones a prototype node and parents the clone under
// parent. Component state is copied, so mutating the clone never
// touches the prototype.
func Instantiate(prototype *Node, parent *Node) *Node {
	clone := prototype.clone()
	clone.SetParent(parent)
	return clone
}

func (n *Node) clone() *Node {
	c := &Node{
		Name:     n.Name,
		Tag:      n.Tag,
		Layer:    n.Layer,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
	}
	if n.Collider != nil {
		col := *n.Collider
		c.Collider = &col
	}
	if n.Renderer != nil {
		r := *n.Renderer
		c.Renderer = &r
	}
	if n.Goal != nil {
		g := *n.Goal
		c.Goal = &g
	}
	if n.Spawn != nil {
		s := *n.Spawn
		c.Spawn = &s
	}
	if n.Avatar != nil {
		a := *n.Avatar
		c.Avatar = &a
	}
	for _, child := range n.children {
		cc := child.clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// NewPrimitive creates a unit primitive with a collider of the given
// kind and an empty renderer, like the engine's builtin cube/sphere.
func NewPrimitive(kind ColliderKind, name string) *Node {
	n := New(name)
	n.Collider = &Collider{Kind: kind}
	n.Renderer = &Renderer{}
	return n
}
