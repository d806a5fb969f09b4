package spawn

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/resources"
	"github.com/strikeball/strikeball/scene"
)

func newBallLibrary() *resources.Library {
	lib := resources.NewLibrary()
	for _, name := range []string{"BallDefender", "BallMidfielder", "BallAttacker"} {
		proto := scene.New(name)
		proto.Collider = &scene.Collider{Kind: scene.ColliderSphere}
		lib.AddTemplate(name, proto)
	}
	return lib
}

func TestBallAllKinds(t *testing.T) {
	lib := newBallLibrary()
	parent := scene.New("Field")
	pos := mgl32.Vec3{1, 0, 2}
	rot := mgl32.QuatIdent()

	for i, kind := range []arena.Ball{arena.BallDefender, arena.BallMidfielder, arena.BallAttacker} {
		ball, err := Ball(lib, kind, i, pos, rot, parent)
		require.NoError(t, err, "kind %s", kind)
		require.Equal(t, parent, ball.Parent())
		require.NotNil(t, ball.Avatar)
		require.Equal(t, i, ball.Avatar.PlayerID)
		require.Equal(t, kind, ball.Avatar.Ball)
		require.InDelta(t, 1, ball.WorldPosition().X(), 1e-5)
	}
	require.Len(t, parent.Children(), 3)
}

func TestBallInvalidType(t *testing.T) {
	_, err := Ball(newBallLibrary(), arena.Ball("Goalie"), 0,
		mgl32.Vec3{}, mgl32.QuatIdent(), scene.New("Field"))

	var ballErr *InvalidBallTypeError
	require.True(t, errors.As(err, &ballErr), "expected InvalidBallTypeError, got %v", err)
	require.Equal(t, arena.Ball("Goalie"), ballErr.Ball)
}

func TestBallSpawnIsStateFree(t *testing.T) {
	lib := newBallLibrary()
	parent := scene.New("Field")

	first, err := Ball(lib, arena.BallDefender, 0, mgl32.Vec3{}, mgl32.QuatIdent(), parent)
	require.NoError(t, err)
	second, err := Ball(lib, arena.BallDefender, 1, mgl32.Vec3{}, mgl32.QuatIdent(), parent)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.Equal(t, 0, first.Avatar.PlayerID)
	require.Equal(t, 1, second.Avatar.PlayerID)
}
