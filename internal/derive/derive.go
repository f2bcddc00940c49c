// Package derive computes the physics quantities the reports do not state
// directly. Every derivation is a pure function of the extracted fields:
// a derived value is Unknown exactly when one of its inputs is Unknown,
// never a number fabricated from partial data.
package derive

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/civilsim/ansys-extract/internal/extract"
	"github.com/civilsim/ansys-extract/schema"
)

// standard gravity used by the dataset for load-to-mass conversion
const gravity = 9.8

// DerivedFieldSet maps the four derived parameter names to their values.
type DerivedFieldSet map[string]schema.Value

// Derive computes all derived fields from one extracted field set. All
// arithmetic is IEEE-754 double precision with no rounding applied.
func Derive(raw extract.RawFieldSet) DerivedFieldSet {
	out := DerivedFieldSet{
		schema.WorkDone:       schema.Unknown(),
		schema.EnergyResidual: schema.Unknown(),
		schema.YieldResidual:  schema.Unknown(),
		schema.MaxFailureLoad: schema.Unknown(),
	}

	force, forceOK := raw.Get(schema.AppliedForce).Number()
	deform, deformOK := maxDeformation(raw.Get(schema.MinMaxDeformation))

	if forceOK && deformOK {
		out[schema.WorkDone] = schema.Number(0.5 * math.Abs(force) * deform)
	}

	if energy, ok := raw.Get(schema.StrainEnergy).Number(); ok {
		if work, ok := out[schema.WorkDone].Number(); ok {
			out[schema.EnergyResidual] = schema.Number(math.Abs(energy - work))
		}
	}

	stress, stressOK := raw.Get(schema.MaxEquivStress).Number()
	yield, yieldOK := raw.Get(schema.TensileYield).Number()
	if stressOK && yieldOK {
		out[schema.YieldResidual] = schema.Number(math.Max(0, stress-yield))
	}

	if forceOK {
		out[schema.MaxFailureLoad] = schema.Number(math.Abs(force) / gravity)
	}

	return out
}

var reDeformRange = regexp.MustCompile(`\[\s*([^,\]]+)\s*,\s*([^,\]]+)\s*\]`)

// maxDeformation resolves the maximum absolute deformation from the raw
// "Min/Max Deformation" value. Reports state it either as a plain number
// or as a "[min, max]" range; the magnitude of the max bound is what the
// work calculation needs.
func maxDeformation(v schema.Value) (float64, bool) {
	if n, ok := v.Number(); ok {
		return math.Abs(n), true
	}
	s, ok := v.Text()
	if !ok {
		return 0, false
	}
	if m := reDeformRange.FindStringSubmatch(s); m != nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		if err != nil {
			return 0, false
		}
		return math.Abs(f), true
	}
	// reports occasionally state a single max value instead of a range
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return math.Abs(f), true
}
