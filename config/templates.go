package config

import (
	"github.com/strikeball/strikeball/arena"
)

// Template-name bindings between the load converter and the resource
// catalog. Hosts with differently named prefabs override these before
// loading an arena.

var goalTemplate = "GoalPost"
var spawnPointTemplate = "SpawnPad"

var ballTemplates = map[arena.Ball]string{
	arena.BallDefender:   "BallDefender",
	arena.BallMidfielder: "BallMidfielder",
	arena.BallAttacker:   "BallAttacker",
}

func SetGoalTemplate(name string) {
	goalTemplate = name
}

func GoalTemplate() string {
	return goalTemplate
}

func SetSpawnPointTemplate(name string) {
	spawnPointTemplate = name
}

func SpawnPointTemplate() string {
	return spawnPointTemplate
}

func SetBallTemplate(ball arena.Ball, name string) {
	ballTemplates[ball] = name
}

// BallTemplate returns the template bound to a ball kind. The second
// result is false for ball values outside the known three.
func BallTemplate(ball arena.Ball) (string, bool) {
	name, ok := ballTemplates[ball]
	return name, ok
}
