package convert

import (
	"fmt"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/scene"
)

// UnknownShapeError aborts a save when an obstacle carries a collider
// that the document schema cannot represent. No partial document is
// produced.
type UnknownShapeError struct {
	Node string
	Kind scene.ColliderKind
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("unknown collider shape %s on %q", e.Kind, e.Node)
}

// BuildArena walks the container's descendants and classifies each one
// as a spawn point, goal or obstacle. Nodes matching none of the three
// are treated as transparent groups and recursed into, so the grouping
// hierarchy used to author the scene never shows up in the document.
// All poses are captured in world space for the same reason.
func BuildArena(root *scene.Node) (*arena.Arena, error) {
	doc := &arena.Arena{Name: root.Name}
	if err := collect(root, doc); err != nil {
		return nil, err
	}
	doc.RecomputeMaximumPlayers()
	return doc, nil
}

func collect(n *scene.Node, doc *arena.Arena) error {
	for _, child := range n.Children() {
		switch {
		case child.Tag == scene.TagSpawnPoint:
			sp := arena.SpawnPoint{
				Position: arena.NewVector3(child.WorldPosition()),
				Rotation: arena.NewQuaternion(child.WorldRotation()),
			}
			if m := child.Spawn; m != nil {
				sp.PlayerID = m.PlayerID
				sp.Ball = m.Ball
			}
			doc.SpawnPoints = append(doc.SpawnPoints, sp)

		case child.Tag == scene.TagGoal:
			g := arena.Goal{
				Position: arena.NewVector3(child.WorldPosition()),
				Rotation: arena.NewQuaternion(child.WorldRotation()),
				Scale:    arena.NewVector3(child.WorldScale()),
			}
			if m := child.Goal; m != nil {
				g.PlayerID = m.PlayerID
			}
			doc.Goals = append(doc.Goals, g)

		case child.Collider != nil:
			ob, err := obstacleOf(child)
			if err != nil {
				return err
			}
			doc.Obstacles = append(doc.Obstacles, ob)

		default:
			// no tag, no collider: transparent group
			if err := collect(child, doc); err != nil {
				return err
			}
		}
	}
	return nil
}

func obstacleOf(n *scene.Node) (arena.Obstacle, error) {
	var shape arena.Shape
	switch n.Collider.Kind {
	case scene.ColliderBox:
		shape = arena.ShapeCube
	case scene.ColliderSphere:
		shape = arena.ShapeSphere
	default:
		return arena.Obstacle{}, &UnknownShapeError{Node: n.Name, Kind: n.Collider.Kind}
	}

	ob := arena.Obstacle{
		Position: arena.NewVector3(n.WorldPosition()),
		Rotation: arena.NewQuaternion(n.WorldRotation()),
		Scale:    arena.NewVector3(n.WorldScale()),
		Shape:    shape,
		Layer:    n.Layer,
	}
	if n.Collider.Material != nil {
		ob.PhysicsMaterial = n.Collider.Material.Name
	}
	if n.Renderer != nil && n.Renderer.Material != nil {
		ob.RendererMaterialName = arena.CanonicalMaterialName(n.Renderer.Material.Name)
	}
	return ob, nil
}
