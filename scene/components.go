package scene

import (
	"github.com/strikeball/strikeball/arena"
)

// Tag mirrors the engine's per-object tag string.
type Tag string

const (
	TagNone       Tag = ""
	TagGoal       Tag = "Goal"
	TagSpawnPoint Tag = "SpawnPoint"
)

// ColliderKind is the runtime type of a collision shape. Only Box and
// Sphere survive serialization; the others exist so the save path has
// real shapes to reject.
type ColliderKind int

const (
	ColliderBox ColliderKind = iota
	ColliderSphere
	ColliderCapsule
	ColliderMesh
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderBox:
		return "Box"
	case ColliderSphere:
		return "Sphere"
	case ColliderCapsule:
		return "Capsule"
	case ColliderMesh:
		return "Mesh"
	}
	return "Unknown"
}

// PhysicsMaterial is a named physics asset shared between colliders.
type PhysicsMaterial struct {
	Name            string
	Bounciness      float32
	DynamicFriction float32
	StaticFriction  float32
}

// Material is a named render material. The engine appends " (Instance)"
// to Name when it clones the material at runtime.
type Material struct {
	Name string
}

type Collider struct {
	Kind     ColliderKind
	Material *PhysicsMaterial
}

type Renderer struct {
	Material *Material
}

// GoalMarker is the behavior state of a goal object.
type GoalMarker struct {
	PlayerID int
}

// SpawnMarker is the behavior state of a spawn point object.
type SpawnMarker struct {
	PlayerID int
	Ball     arena.Ball
}

// AvatarMarker is stamped on spawned ball avatars so input routing can
// associate control with the right player slot.
type AvatarMarker struct {
	PlayerID int
	Ball     arena.Ball
}
