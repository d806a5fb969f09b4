package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strikeball/strikeball/scene"
	"github.com/strikeball/strikeball/utils"
)

const fixtureCatalog = `
materials:
  - name: Grass
  - name: Steel

physics_materials:
  - name: Bouncy
    bounciness: 0.9
    dynamic_friction: 0.1
    static_friction: 0.1

templates:
  - name: GoalPost
    tag: Goal
    children:
      - name: Frame
        collider: box
        physics_material: Bouncy
        material: Steel
        scale: [3, 2, 0.5]
        rotation_degrees: [0, 90, 0]
  - name: SpawnPad
    tag: SpawnPoint
  - name: BallAttacker
    collider: sphere
    position: [0, 0.5, 0]
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadLibrary(t *testing.T) {
	lib, err := LoadLibrary(writeCatalog(t, fixtureCatalog))
	require.NoError(t, err)

	require.Equal(t, 2, lib.MaterialCount())
	require.Equal(t, 1, lib.PhysicsMaterialCount())
	require.Equal(t, 3, lib.TemplateCount())

	pm, err := lib.PhysicsMaterial("Bouncy")
	require.NoError(t, err)
	require.InDelta(t, 0.9, pm.Bounciness, 1e-6)

	goal, err := lib.Template("GoalPost")
	require.NoError(t, err)
	require.Equal(t, scene.TagGoal, goal.Tag)
	require.NotNil(t, goal.Goal)
	require.Len(t, goal.Children(), 1)

	frame := goal.Children()[0]
	require.NotNil(t, frame.Collider)
	require.Equal(t, scene.ColliderBox, frame.Collider.Kind)
	require.Equal(t, "Bouncy", frame.Collider.Material.Name)
	require.Equal(t, "Steel", frame.Renderer.Material.Name)
	require.InDelta(t, 3, frame.Scale.X(), 1e-6)

	e := utils.QuatToEulerDegrees(frame.Rotation)
	require.InDelta(t, 90, e.Y(), 1e-3)

	ball, err := lib.Template("BallAttacker")
	require.NoError(t, err)
	require.Equal(t, scene.ColliderSphere, ball.Collider.Kind)
	require.InDelta(t, 0.5, ball.Position.Y(), 1e-6)
}

func TestLibraryUnknownNames(t *testing.T) {
	lib, err := LoadLibrary(writeCatalog(t, fixtureCatalog))
	require.NoError(t, err)

	_, err = lib.Material("Lava")
	require.Error(t, err)
	_, err = lib.PhysicsMaterial("Sticky")
	require.Error(t, err)
	_, err = lib.Template("Banner")
	require.Error(t, err)
}

func TestLoadLibraryBadCollider(t *testing.T) {
	_, err := LoadLibrary(writeCatalog(t, `
templates:
  - name: Weird
    collider: cone
`))
	require.Error(t, err)
}

func TestLoadLibraryUndeclaredReference(t *testing.T) {
	// template references a material that is not declared
	_, err := LoadLibrary(writeCatalog(t, `
templates:
  - name: Wall
    collider: box
    material: Brick
`))
	require.Error(t, err)
}
