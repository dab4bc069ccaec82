package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeHyperbolic represents BPR = a + b / RPB
	ModelTypeHyperbolic ModelType = iota
	// ModelTypeLogarithmic represents BPR = a + b * ln(RPB)
	ModelTypeLogarithmic
	// ModelTypePower represents BPR = a * RPB^b
	ModelTypePower
	// ModelTypeLinear represents BPR = a + b * RPB
	ModelTypeLinear
)

var modelTypeNames = map[ModelType]string{
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeLinear:      "linear",
}

// String returns the name of the model type.
func (mt ModelType) String() string {
	if name, ok := modelTypeNames[mt]; ok {
		return name
	}

	return "unknown"
}

// ParseModelType returns the ModelType named name, case-insensitively.
func ParseModelType(name string) (ModelType, bool) {
	for mt, n := range modelTypeNames {
		if strings.EqualFold(n, name) {
			return mt, true
		}
	}

	return 0, false
}

// Estimator evaluates a fitted size model.
type Estimator interface {
	// Estimate returns the expected bytes per row of a blob holding rows rows.
	Estimate(rows float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients [a, b].
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. Exactly two are required.
	SetCoefficients(coeffs []float64) error
}

// twoCoeff is the state shared by every two-coefficient model.
type twoCoeff struct {
	a, b float64
}

func (c *twoCoeff) Coefficients() []float64 {
	return []float64{c.a, c.b}
}

func (c *twoCoeff) set(mt ModelType, coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%s model expects exactly 2 coefficients, got %d", mt, len(coeffs))
	}
	c.a, c.b = coeffs[0], coeffs[1]

	return nil
}

// HyperbolicEstimator implements BPR = a + b / RPB.
type HyperbolicEstimator struct{ twoCoeff }

// NewHyperbolicEstimator creates a hyperbolic estimator.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{twoCoeff{a: a, b: b}}
}

// Estimate returns +Inf for rows <= 0.
func (h *HyperbolicEstimator) Estimate(rows float64) float64 {
	if rows <= 0 {
		return math.Inf(1)
	}

	return h.a + h.b/rows
}

// Type returns ModelTypeHyperbolic.
func (h *HyperbolicEstimator) Type() ModelType { return ModelTypeHyperbolic }

// SetCoefficients sets [a, b].
func (h *HyperbolicEstimator) SetCoefficients(coeffs []float64) error {
	return h.set(ModelTypeHyperbolic, coeffs)
}

// LogarithmicEstimator implements BPR = a + b * ln(RPB).
type LogarithmicEstimator struct{ twoCoeff }

// NewLogarithmicEstimator creates a logarithmic estimator.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{twoCoeff{a: a, b: b}}
}

// Estimate returns +Inf for rows <= 0.
func (l *LogarithmicEstimator) Estimate(rows float64) float64 {
	if rows <= 0 {
		return math.Inf(1)
	}

	return l.a + l.b*math.Log(rows)
}

// Type returns ModelTypeLogarithmic.
func (l *LogarithmicEstimator) Type() ModelType { return ModelTypeLogarithmic }

// SetCoefficients sets [a, b].
func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	return l.set(ModelTypeLogarithmic, coeffs)
}

// PowerEstimator implements BPR = a * RPB^b.
type PowerEstimator struct{ twoCoeff }

// NewPowerEstimator creates a power estimator.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{twoCoeff{a: a, b: b}}
}

// Estimate returns +Inf for rows <= 0.
func (p *PowerEstimator) Estimate(rows float64) float64 {
	if rows <= 0 {
		return math.Inf(1)
	}

	return p.a * math.Pow(rows, p.b)
}

// Type returns ModelTypePower.
func (p *PowerEstimator) Type() ModelType { return ModelTypePower }

// SetCoefficients sets [a, b].
func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	return p.set(ModelTypePower, coeffs)
}

// LinearEstimator implements BPR = a + b * RPB.
type LinearEstimator struct{ twoCoeff }

// NewLinearEstimator creates a linear estimator.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{twoCoeff{a: a, b: b}}
}

// Estimate evaluates the line at rows.
func (l *LinearEstimator) Estimate(rows float64) float64 {
	return l.a + l.b*rows
}

// Type returns ModelTypeLinear.
func (l *LinearEstimator) Type() ModelType { return ModelTypeLinear }

// SetCoefficients sets [a, b].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	return l.set(ModelTypeLinear, coeffs)
}

// NewEstimator restores an estimator from its model name and coefficients.
//
// Example:
//
//	estimator, err := regression.NewEstimator("hyperbolic", []float64{1.2, 850})
//	if err != nil {
//	    return err
//	}
//	bpr := estimator.Estimate(10_000)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	mt, ok := ParseModelType(name)
	if !ok {
		names := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			names = append(names, n)
		}
		slices.Sort(names)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(names, ", "))
	}

	var estimator Estimator
	switch mt {
	case ModelTypeHyperbolic:
		estimator = NewHyperbolicEstimator(0, 0)
	case ModelTypeLogarithmic:
		estimator = NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		estimator = NewPowerEstimator(0, 0)
	default:
		estimator = NewLinearEstimator(0, 0)
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
