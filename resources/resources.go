package resources

import (
	"github.com/pkg/errors"

	"github.com/strikeball/strikeball/scene"
)

// The converter and spawn action never touch asset storage directly;
// they resolve names through these interfaces so the host can plug in
// whatever backing store it has.

type MaterialResolver interface {
	Material(name string) (*scene.Material, error)
}

type PhysicsMaterialResolver interface {
	PhysicsMaterial(name string) (*scene.PhysicsMaterial, error)
}

type TemplateResolver interface {
	Template(name string) (*scene.Node, error)
}

type Resolver interface {
	MaterialResolver
	PhysicsMaterialResolver
	TemplateResolver
}

// Library is a flat string-keyed resource namespace. It is the stock
// Resolver implementation, filled either from a YAML catalog file or
// programmatically by the host.
type Library struct {
	materials        map[string]*scene.Material
	physicsMaterials map[string]*scene.PhysicsMaterial
	templates        map[string]*scene.Node
}

func NewLibrary() *Library {
	return &Library{
		materials:        make(map[string]*scene.Material),
		physicsMaterials: make(map[string]*scene.PhysicsMaterial),
		templates:        make(map[string]*scene.Node),
	}
}

func (l *Library) AddMaterial(m *scene.Material) {
	l.materials[m.Name] = m
}

func (l *Library) AddPhysicsMaterial(m *scene.PhysicsMaterial) {
	l.physicsMaterials[m.Name] = m
}

// AddTemplate registers a prototype node. Callers get clones via
// scene.Instantiate, never the prototype itself.
func (l *Library) AddTemplate(name string, prototype *scene.Node) {
	l.templates[name] = prototype
}

func (l *Library) Material(name string) (*scene.Material, error) {
	if m, ok := l.materials[name]; ok {
		return m, nil
	}
	return nil, errors.Errorf("Material %q is not in the catalog", name)
}

func (l *Library) PhysicsMaterial(name string) (*scene.PhysicsMaterial, error) {
	if m, ok := l.physicsMaterials[name]; ok {
		return m, nil
	}
	return nil, errors.Errorf("Physics material %q is not in the catalog", name)
}

func (l *Library) Template(name string) (*scene.Node, error) {
	if t, ok := l.templates[name]; ok {
		return t, nil
	}
	return nil, errors.Errorf("Template %q is not in the catalog", name)
}

func (l *Library) MaterialCount() int        { return len(l.materials) }
func (l *Library) PhysicsMaterialCount() int { return len(l.physicsMaterials) }
func (l *Library) TemplateCount() int        { return len(l.templates) }
