package material

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"limits-fits/internal/errors"
	"limits-fits/internal/logging"
)

// Library is a material catalog: the built-ins plus any user entries
// loaded from library files. User entries shadow built-ins by name.
type Library struct {
	materials []Material
}

// NewLibrary returns a library seeded with the built-in catalog.
func NewLibrary() *Library {
	return &Library{materials: Builtins()}
}

// Materials returns the catalog in load order.
func (l *Library) Materials() []Material {
	out := make([]Material, len(l.materials))
	copy(out, l.materials)
	return out
}

// Lookup finds a material by name, case-insensitively.
func (l *Library) Lookup(name string) (Material, error) {
	for _, m := range l.materials {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Material{}, errors.NotFound("material", name)
}

// Add inserts a material, replacing any existing entry with the same name.
func (l *Library) Add(m Material) {
	for i, existing := range l.materials {
		if strings.EqualFold(existing.Name, m.Name) {
			l.materials[i] = m
			return
		}
	}
	l.materials = append(l.materials, m)
}

// libraryAttrs maps HCL attribute names onto Material fields.
var libraryAttrs = map[string]func(*Material, float64){
	"temp":           func(m *Material, v float64) { m.Temp = v },
	"cte":            func(m *Material, v float64) { m.CTE = v },
	"poissons":       func(m *Material, v float64) { m.Poissons = v },
	"youngs":         func(m *Material, v float64) { m.Youngs = v },
	"yield_strength": func(m *Material, v float64) { m.YieldStrength = v },
	"uts":            func(m *Material, v float64) { m.UTS = v },
}

// LoadFile merges a user library file into the catalog. A missing file is
// not an error; a configured path simply may not exist yet.
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("no material library file", zap.String("path", path))
			return nil
		}
		return errors.Wrap(errors.TypeConfig, "reading material library", err)
	}
	return l.LoadBytes(data, path)
}

// LoadBytes merges HCL library source into the catalog. The expected
// shape is one block per material:
//
//	material "Invar 36" {
//	  cte    = 1.2
//	  youngs = 141000
//	}
func (l *Library) LoadBytes(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "parsing material library", diags)
	}

	content, diags := file.Body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "material", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "decoding material library", diags)
	}

	for _, block := range content.Blocks {
		m := Material{Name: block.Labels[0], Temp: ReferenceTemp}

		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return errors.Wrap(errors.TypeConfig, "decoding material block", diags).
				WithContext("material", m.Name)
		}

		for name, attr := range attrs {
			set, known := libraryAttrs[name]
			if !known {
				return errors.Newf(errors.TypeConfig, "unknown material attribute %q", name).
					WithContext("material", m.Name)
			}
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return errors.Wrap(errors.TypeConfig, "evaluating material attribute", diags).
					WithContext("material", m.Name)
			}
			if val.Type() != cty.Number {
				return errors.Newf(errors.TypeConfig, "material attribute %q must be a number", name).
					WithContext("material", m.Name)
			}
			f, _ := val.AsBigFloat().Float64()
			set(&m, f)
		}

		l.Add(m)
		logging.Debug("loaded material", zap.String("name", m.Name), zap.String("file", filename))
	}

	return nil
}
