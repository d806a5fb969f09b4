package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < eps
}

func TestTreeOps(t *testing.T) {
	root := New("Root")
	a := New("A")
	b := New("B")
	a.SetParent(root)
	b.SetParent(root)

	if len(root.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children()))
	}
	if a.Parent() != root {
		t.Errorf("A parent mismatch")
	}

	b.SetParent(a)
	if len(root.Children()) != 1 || len(a.Children()) != 1 {
		t.Errorf("reparenting left stale links")
	}

	root.DestroyChildren()
	if len(root.Children()) != 0 {
		t.Errorf("DestroyChildren left children")
	}
	if a.Parent() != nil {
		t.Errorf("destroyed child still linked to parent")
	}
}

func TestWorldTransformComposition(t *testing.T) {
	root := New("Root")

	group := New("Group")
	group.Position = mgl32.Vec3{10, 0, 0}
	group.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	group.Scale = mgl32.Vec3{2, 2, 2}
	group.SetParent(root)

	child := New("Child")
	child.Position = mgl32.Vec3{1, 0, 0}
	child.SetParent(group)

	// (1,0,0) scaled to (2,0,0), rotated 90deg around Y to (0,0,-2),
	// translated by (10,0,0)
	want := mgl32.Vec3{10, 0, -2}
	if got := child.WorldPosition(); !vecNear(got, want) {
		t.Errorf("WorldPosition = %v; expected %v", got, want)
	}
	if got := child.WorldScale(); !vecNear(got, mgl32.Vec3{2, 2, 2}) {
		t.Errorf("WorldScale = %v; expected (2,2,2)", got)
	}
}

func TestSetWorldTransformInverts(t *testing.T) {
	root := New("Root")
	group := New("Group")
	group.Position = mgl32.Vec3{-3, 5, 1}
	group.Rotation = mgl32.QuatRotate(mgl32.DegToRad(45), mgl32.Vec3{0, 1, 0})
	group.Scale = mgl32.Vec3{2, 1, 2}
	group.SetParent(root)

	n := New("N")
	n.SetParent(group)

	wantPos := mgl32.Vec3{4, -2, 7}
	wantRot := mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{1, 0, 0})
	wantScale := mgl32.Vec3{3, 3, 3}

	n.SetWorldPosition(wantPos)
	n.SetWorldRotation(wantRot)
	n.SetWorldScale(wantScale)

	if got := n.WorldPosition(); !vecNear(got, wantPos) {
		t.Errorf("WorldPosition = %v; expected %v", got, wantPos)
	}
	if got := n.WorldScale(); !vecNear(got, wantScale) {
		t.Errorf("WorldScale = %v; expected %v", got, wantScale)
	}
	got := n.WorldRotation()
	if d := got.Dot(wantRot); d < 1-eps && d > -1+eps {
		t.Errorf("WorldRotation = %v; expected %v", got, wantRot)
	}
}

func TestInstantiateDeepClones(t *testing.T) {
	proto := New("GoalPost")
	proto.Tag = TagGoal
	proto.Goal = &GoalMarker{PlayerID: 7}
	mesh := New("Mesh")
	mesh.Renderer = &Renderer{Material: &Material{Name: "Steel"}}
	mesh.SetParent(proto)

	parent := New("Arena")
	clone := Instantiate(proto, parent)

	if clone.Parent() != parent {
		t.Fatalf("clone not parented")
	}
	if clone == proto || clone.Goal == proto.Goal {
		t.Fatalf("clone shares state with prototype")
	}
	clone.Goal.PlayerID = 1
	if proto.Goal.PlayerID != 7 {
		t.Errorf("mutating clone changed prototype")
	}
	if len(clone.Children()) != 1 || clone.Children()[0] == mesh {
		t.Errorf("children not deep-cloned")
	}
	if len(proto.Children()) != 1 {
		t.Errorf("prototype children changed by Instantiate")
	}
}
