package web

import (
	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/utils"
)

// JSON views mirror the document but add euler-degree rotations, much
// easier to eyeball than raw quaternions.

type arenaView struct {
	Name           string
	MaximumPlayers int
	Goals          []goalView
	Obstacles      []obstacleView
	SpawnPoints    []spawnPointView
}

type goalView struct {
	arena.Goal
	EulerDegrees [3]float32
}

type obstacleView struct {
	arena.Obstacle
	EulerDegrees [3]float32
}

type spawnPointView struct {
	arena.SpawnPoint
	EulerDegrees [3]float32
}

func eulerOf(q arena.Quaternion) [3]float32 {
	e := utils.QuatToEulerDegrees(q.Quat())
	return [3]float32{e.X(), e.Y(), e.Z()}
}

func newArenaView(doc *arena.Arena) *arenaView {
	v := &arenaView{
		Name:           doc.Name,
		MaximumPlayers: doc.MaximumPlayers,
	}
	for _, g := range doc.Goals {
		v.Goals = append(v.Goals, goalView{Goal: g, EulerDegrees: eulerOf(g.Rotation)})
	}
	for _, ob := range doc.Obstacles {
		v.Obstacles = append(v.Obstacles, obstacleView{Obstacle: ob, EulerDegrees: eulerOf(ob.Rotation)})
	}
	for _, sp := range doc.SpawnPoints {
		v.SpawnPoints = append(v.SpawnPoints, spawnPointView{SpawnPoint: sp, EulerDegrees: eulerOf(sp.Rotation)})
	}
	return v
}
