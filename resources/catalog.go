package resources

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/strikeball/strikeball/scene"
	"github.com/strikeball/strikeball/utils"
)

// A catalog file declares the whole resource namespace of the game:
// render materials, physics materials and the node templates the load
// path instantiates. Template rotations are authored in euler degrees.

type catalogFile struct {
	Materials        []catalogMaterial        `yaml:"materials"`
	PhysicsMaterials []catalogPhysicsMaterial `yaml:"physics_materials"`
	Templates        []catalogTemplate        `yaml:"templates"`
}

type catalogMaterial struct {
	Name string `yaml:"name"`
}

type catalogPhysicsMaterial struct {
	Name            string  `yaml:"name"`
	Bounciness      float32 `yaml:"bounciness"`
	DynamicFriction float32 `yaml:"dynamic_friction"`
	StaticFriction  float32 `yaml:"static_friction"`
}

type catalogTemplate struct {
	Name            string            `yaml:"name"`
	Tag             string            `yaml:"tag"`
	Layer           int               `yaml:"layer"`
	Collider        string            `yaml:"collider"`
	PhysicsMaterial string            `yaml:"physics_material"`
	Material        string            `yaml:"material"`
	Position        []float32         `yaml:"position"`
	RotationDegrees []float32         `yaml:"rotation_degrees"`
	Scale           []float32         `yaml:"scale"`
	Children        []catalogTemplate `yaml:"children"`
}

// LoadLibrary reads a YAML catalog and builds the resource namespace.
// Materials and physics materials are registered before templates so
// templates can reference them.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read catalog %q", path)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse catalog %q", path)
	}

	lib := NewLibrary()
	for _, m := range cf.Materials {
		lib.AddMaterial(&scene.Material{Name: m.Name})
	}
	for _, pm := range cf.PhysicsMaterials {
		lib.AddPhysicsMaterial(&scene.PhysicsMaterial{
			Name:            pm.Name,
			Bounciness:      pm.Bounciness,
			DynamicFriction: pm.DynamicFriction,
			StaticFriction:  pm.StaticFriction,
		})
	}
	for i := range cf.Templates {
		ct := &cf.Templates[i]
		node, err := lib.buildTemplate(ct)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to build template %q", ct.Name)
		}
		lib.AddTemplate(ct.Name, node)
	}
	return lib, nil
}

func (l *Library) buildTemplate(ct *catalogTemplate) (*scene.Node, error) {
	n := scene.New(ct.Name)
	n.Layer = ct.Layer

	switch ct.Tag {
	case "":
	case string(scene.TagGoal):
		n.Tag = scene.TagGoal
		n.Goal = &scene.GoalMarker{}
	case string(scene.TagSpawnPoint):
		n.Tag = scene.TagSpawnPoint
		n.Spawn = &scene.SpawnMarker{}
	default:
		n.Tag = scene.Tag(ct.Tag)
	}

	switch ct.Collider {
	case "":
	case "box":
		n.Collider = &scene.Collider{Kind: scene.ColliderBox}
	case "sphere":
		n.Collider = &scene.Collider{Kind: scene.ColliderSphere}
	case "capsule":
		n.Collider = &scene.Collider{Kind: scene.ColliderCapsule}
	case "mesh":
		n.Collider = &scene.Collider{Kind: scene.ColliderMesh}
	default:
		return nil, errors.Errorf("Unknown collider kind %q", ct.Collider)
	}

	if ct.PhysicsMaterial != "" {
		if n.Collider == nil {
			return nil, errors.Errorf("Physics material %q without collider", ct.PhysicsMaterial)
		}
		pm, err := l.PhysicsMaterial(ct.PhysicsMaterial)
		if err != nil {
			return nil, err
		}
		n.Collider.Material = pm
	}

	if ct.Material != "" {
		m, err := l.Material(ct.Material)
		if err != nil {
			return nil, err
		}
		n.Renderer = &scene.Renderer{Material: m}
	}

	if v, err := vec3Field(ct.Position, "position"); err != nil {
		return nil, err
	} else if v != nil {
		n.Position = *v
	}
	if v, err := vec3Field(ct.Scale, "scale"); err != nil {
		return nil, err
	} else if v != nil {
		n.Scale = *v
	}
	if v, err := vec3Field(ct.RotationDegrees, "rotation_degrees"); err != nil {
		return nil, err
	} else if v != nil {
		n.Rotation = utils.QuatFromEulerDegrees(v.X(), v.Y(), v.Z())
	}

	for i := range ct.Children {
		child, err := l.buildTemplate(&ct.Children[i])
		if err != nil {
			return nil, err
		}
		child.SetParent(n)
	}
	return n, nil
}

func vec3Field(v []float32, field string) (*mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return nil, nil
	case 3:
		return &mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return nil, errors.Errorf("Field %s must have 3 components, got %d", field, len(v))
	}
}
