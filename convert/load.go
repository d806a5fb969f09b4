package convert

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/config"
	"github.com/strikeball/strikeball/resources"
	"github.com/strikeball/strikeball/scene"
	"github.com/strikeball/strikeball/spawn"
)

// UnhandledShapeError aborts a load when the document carries a Shape
// value outside the schema's two primitives.
type UnhandledShapeError struct {
	Shape arena.Shape
}

func (e *UnhandledShapeError) Error() string {
	return fmt.Sprintf("unhandled obstacle shape %q", string(e.Shape))
}

// PopulateScene rebuilds the target container from a document. All
// prior children are destroyed up front, before any validation, so a
// failed load never leaves stale objects behind; it may leave the
// container partially populated, there is no rollback.
func PopulateScene(doc *arena.Arena, target *scene.Node, res resources.Resolver) error {
	target.DestroyChildren()
	target.Name = doc.Name

	for i := range doc.Obstacles {
		if err := placeObstacle(&doc.Obstacles[i], target, res); err != nil {
			return err
		}
	}
	for i := range doc.Goals {
		if err := placeGoal(&doc.Goals[i], target, res); err != nil {
			return err
		}
	}
	for i := range doc.SpawnPoints {
		if err := placeSpawnPoint(&doc.SpawnPoints[i], target, res); err != nil {
			return err
		}
	}
	return nil
}

func placeObstacle(ob *arena.Obstacle, target *scene.Node, res resources.Resolver) error {
	var kind scene.ColliderKind
	switch ob.Shape {
	case arena.ShapeCube:
		kind = scene.ColliderBox
	case arena.ShapeSphere:
		kind = scene.ColliderSphere
	default:
		return &UnhandledShapeError{Shape: ob.Shape}
	}

	n := scene.NewPrimitive(kind, "Obstacle")
	n.SetParent(target)
	n.SetWorldPosition(ob.Position.Vec3())
	n.SetWorldRotation(ob.Rotation.Quat())
	n.SetWorldScale(ob.Scale.Vec3())
	n.Layer = ob.Layer

	if ob.PhysicsMaterial != "" {
		pm, err := res.PhysicsMaterial(ob.PhysicsMaterial)
		if err != nil {
			return errors.Wrapf(err, "Failed to resolve physics material for obstacle")
		}
		n.Collider.Material = pm
	}
	if ob.RendererMaterialName != "" {
		m, err := res.Material(ob.RendererMaterialName)
		if err != nil {
			return errors.Wrapf(err, "Failed to resolve render material for obstacle")
		}
		n.Renderer.Material = m
	}
	return nil
}

func placeGoal(g *arena.Goal, target *scene.Node, res resources.Resolver) error {
	prototype, err := res.Template(config.GoalTemplate())
	if err != nil {
		return errors.Wrapf(err, "Failed to resolve goal template")
	}

	n := scene.Instantiate(prototype, target)
	n.Tag = scene.TagGoal
	n.SetWorldPosition(g.Position.Vec3())
	n.SetWorldRotation(g.Rotation.Quat())
	n.SetWorldScale(g.Scale.Vec3())
	if n.Goal == nil {
		n.Goal = &scene.GoalMarker{}
	}
	n.Goal.PlayerID = g.PlayerID
	return nil
}

func placeSpawnPoint(sp *arena.SpawnPoint, target *scene.Node, res resources.Resolver) error {
	prototype, err := res.Template(config.SpawnPointTemplate())
	if err != nil {
		return errors.Wrapf(err, "Failed to resolve spawn point template")
	}

	// spawn points are never resized, scale stays whatever the
	// template authored
	n := scene.Instantiate(prototype, target)
	n.Tag = scene.TagSpawnPoint
	n.SetWorldPosition(sp.Position.Vec3())
	n.SetWorldRotation(sp.Rotation.Quat())
	if n.Spawn == nil {
		n.Spawn = &scene.SpawnMarker{}
	}
	n.Spawn.PlayerID = sp.PlayerID
	n.Spawn.Ball = sp.Ball

	// secondary spawn action: the ball avatar appears at the spawn
	// point's pose as part of the load
	_, err = spawn.Ball(res, sp.Ball, sp.PlayerID, n.WorldPosition(), n.WorldRotation(), n)
	return err
}
