package spawn

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/config"
	"github.com/strikeball/strikeball/resources"
	"github.com/strikeball/strikeball/scene"
)

// InvalidBallTypeError reports a Ball value outside the known three
// kinds. Fatal to the load that triggered the spawn.
type InvalidBallTypeError struct {
	Ball arena.Ball
}

func (e *InvalidBallTypeError) Error() string {
	return fmt.Sprintf("invalid ball type %q", string(e.Ball))
}

// Ball instantiates the ball avatar for kind at the given world pose,
// parents it under parent and stamps it with the player slot so input
// routing can find it. Template selection is a plain table lookup with
// an explicit error default.
func Ball(res resources.TemplateResolver, kind arena.Ball, playerID int,
	pos mgl32.Vec3, rot mgl32.Quat, parent *scene.Node) (*scene.Node, error) {

	templateName, ok := config.BallTemplate(kind)
	if !ok {
		return nil, &InvalidBallTypeError{Ball: kind}
	}

	prototype, err := res.Template(templateName)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to resolve ball template %q", templateName)
	}

	ball := scene.Instantiate(prototype, parent)
	ball.SetWorldPosition(pos)
	ball.SetWorldRotation(rot)
	ball.Avatar = &scene.AvatarMarker{PlayerID: playerID, Ball: kind}
	return ball, nil
}
