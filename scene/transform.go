package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World-space transforms are composed up the parent chain. Scale
// composes componentwise, which is exact as long as grouping nodes are
// not rotated against non-uniform scales; authored arenas keep group
// transforms uniform.

func (n *Node) WorldPosition() mgl32.Vec3 {
	if n.parent == nil {
		return n.Position
	}
	return n.parent.WorldPosition().Add(
		n.parent.WorldRotation().Rotate(mulElem(n.Position, n.parent.WorldScale())))
}

func (n *Node) WorldRotation() mgl32.Quat {
	if n.parent == nil {
		return n.Rotation
	}
	return n.parent.WorldRotation().Mul(n.Rotation)
}

func (n *Node) WorldScale() mgl32.Vec3 {
	if n.parent == nil {
		return n.Scale
	}
	return mulElem(n.parent.WorldScale(), n.Scale)
}

// SetWorldPosition moves the node to a world-space position by solving
// for the local offset under the current parent chain.
func (n *Node) SetWorldPosition(p mgl32.Vec3) {
	if n.parent == nil {
		n.Position = p
		return
	}
	local := n.parent.WorldRotation().Inverse().Rotate(p.Sub(n.parent.WorldPosition()))
	n.Position = divElem(local, n.parent.WorldScale())
}

func (n *Node) SetWorldRotation(q mgl32.Quat) {
	if n.parent == nil {
		n.Rotation = q
		return
	}
	n.Rotation = n.parent.WorldRotation().Inverse().Mul(q)
}

func (n *Node) SetWorldScale(s mgl32.Vec3) {
	if n.parent == nil {
		n.Scale = s
		return
	}
	n.Scale = divElem(s, n.parent.WorldScale())
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func divElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() / b.X(), a.Y() / b.Y(), a.Z() / b.Z()}
}
