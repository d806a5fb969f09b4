package arena

import (
	"encoding/xml"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape of an obstacle collider. Stored as plain strings so saved
// arenas stay hand-editable; unknown values are rejected by the load
// converter, not by the decoder.
type Shape string

const (
	ShapeCube   Shape = "Cube"
	ShapeSphere Shape = "Sphere"
)

// Ball selects which ball avatar a spawn point produces.
type Ball string

const (
	BallDefender   Ball = "Defender"
	BallMidfielder Ball = "Midfielder"
	BallAttacker   Ball = "Attacker"
)

// Vector3 and Quaternion mirror the element layout the game's original
// serializer produced (child elements, not attributes).
type Vector3 struct {
	X float32 `xml:"X"`
	Y float32 `xml:"Y"`
	Z float32 `xml:"Z"`
}

type Quaternion struct {
	X float32 `xml:"X"`
	Y float32 `xml:"Y"`
	Z float32 `xml:"Z"`
	W float32 `xml:"W"`
}

func NewVector3(v mgl32.Vec3) Vector3 {
	return Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func (v Vector3) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func NewQuaternion(q mgl32.Quat) Quaternion {
	return Quaternion{X: q.X(), Y: q.Y(), Z: q.Z(), W: q.W}
}

func (q Quaternion) Quat() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// Arena is the root aggregate of a saved level. It exists only as a
// transient document during save/load; the running scene is the source
// of truth.
type Arena struct {
	XMLName        xml.Name     `xml:"Arena"`
	Name           string       `xml:"Name"`
	MaximumPlayers int          `xml:"MaximumPlayers"`
	Goals          []Goal       `xml:"Goals>Goal"`
	Obstacles      []Obstacle   `xml:"Obstacles>Obstacle"`
	SpawnPoints    []SpawnPoint `xml:"SpawnPoints>SpawnPoint"`
}

type Goal struct {
	PlayerID int        `xml:"PlayerID"`
	Position Vector3    `xml:"Position"`
	Rotation Quaternion `xml:"Rotation"`
	Scale    Vector3    `xml:"Scale"`
}

type Obstacle struct {
	Position             Vector3    `xml:"Position"`
	Rotation             Quaternion `xml:"Rotation"`
	Scale                Vector3    `xml:"Scale"`
	Shape                Shape      `xml:"Shape"`
	Layer                int        `xml:"Layer"`
	PhysicsMaterial      string     `xml:"PhysicsMaterial"`
	RendererMaterialName string     `xml:"RendererMaterialName"`
}

type SpawnPoint struct {
	PlayerID int        `xml:"PlayerID"`
	Ball     Ball       `xml:"Ball"`
	Position Vector3    `xml:"Position"`
	Rotation Quaternion `xml:"Rotation"`
}

// RecomputeMaximumPlayers derives MaximumPlayers from the goal list.
// The stored value is never trusted; saving always recomputes it.
func (a *Arena) RecomputeMaximumPlayers() {
	max := 0
	for _, g := range a.Goals {
		if g.PlayerID+1 > max {
			max = g.PlayerID + 1
		}
	}
	a.MaximumPlayers = max
}

// CanonicalMaterialName strips the "(Instance)" suffix the engine
// appends to runtime-cloned materials and trims whitespace, so the
// stored name matches the resource catalog. Idempotent.
func CanonicalMaterialName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, "(Instance)", ""))
}
