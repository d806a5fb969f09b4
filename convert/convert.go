// Package convert translates between the live scene tree and the
// serializable arena document. Saving never writes a file unless the
// whole scene classified cleanly; loading tears the target container
// down before repopulating it.
package convert

import (
	"log"

	"github.com/strikeball/strikeball/arena"
	"github.com/strikeball/strikeball/resources"
	"github.com/strikeball/strikeball/scene"
)

// SaveScene captures root into a document and writes it to path.
func SaveScene(root *scene.Node, path string) error {
	doc, err := BuildArena(root)
	if err != nil {
		return err
	}
	if err := doc.Save(path); err != nil {
		return err
	}
	log.Printf("[convert] saved arena %q to %s: %d goals, %d obstacles, %d spawn points",
		doc.Name, path, len(doc.Goals), len(doc.Obstacles), len(doc.SpawnPoints))
	return nil
}

// LoadScene reads a document from path and rebuilds target from it.
func LoadScene(path string, target *scene.Node, res resources.Resolver) error {
	doc, err := arena.Load(path)
	if err != nil {
		return err
	}
	if err := PopulateScene(doc, target, res); err != nil {
		return err
	}
	log.Printf("[convert] loaded arena %q from %s", doc.Name, path)
	return nil
}
