package regression

import (
	"fmt"
	"math"
	"slices"
)

// fitModels fits every model type to (x, y) and ranks them by R², best first.
func fitModels(x, y []float64) ([]*Model, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched data lengths: %d RPB vs %d BPR", len(x), len(y))
	}

	if len(x) < 2 {
		return nil, fmt.Errorf("insufficient data points for regression: %d", len(x))
	}

	models := []*Model{
		fitHyperbolic(x, y),
		fitLogarithmic(x, y),
		fitPower(x, y),
		fitLinear(x, y),
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		switch {
		case a.RSquared > b.RSquared:
			return -1
		case a.RSquared < b.RSquared:
			return 1
		default:
			return 0
		}
	})

	return models, nil
}

// leastSquares fits y = a + b*x. A degenerate x (all equal) yields b = 0.
func leastSquares(x, y []float64) (a, b float64) {
	n := float64(len(x))

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / n
	meanY := sumY / n

	denom := sumX2 - n*meanX*meanX
	if denom != 0 {
		b = (sumXY - n*meanX*meanY) / denom
	}
	a = meanY - b*meanX

	return a, b
}

func transform(values []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}

	return out
}

func newModel(mt ModelType, estimator Estimator, formula string, x, y []float64) *Model {
	predicted := transform(x, estimator.Estimate)
	r2, rmse := goodnessOfFit(y, predicted)

	return &Model{
		Type:         mt,
		Coefficients: estimator.Coefficients(),
		RSquared:     r2,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    estimator,
	}
}

// fitHyperbolic regresses y on 1/x.
func fitHyperbolic(x, y []float64) *Model {
	a, b := leastSquares(transform(x, func(v float64) float64 { return 1 / v }), y)

	return newModel(ModelTypeHyperbolic, NewHyperbolicEstimator(a, b),
		fmt.Sprintf("BPR = %.4f + %.4f / RPB", a, b), x, y)
}

// fitLogarithmic regresses y on ln(x).
func fitLogarithmic(x, y []float64) *Model {
	a, b := leastSquares(transform(x, math.Log), y)

	return newModel(ModelTypeLogarithmic, NewLogarithmicEstimator(a, b),
		fmt.Sprintf("BPR = %.4f + %.4f * ln(RPB)", a, b), x, y)
}

// fitPower regresses ln(y) on ln(x) and maps the intercept back with exp.
func fitPower(x, y []float64) *Model {
	lnA, b := leastSquares(transform(x, math.Log), transform(y, math.Log))
	a := math.Exp(lnA)

	return newModel(ModelTypePower, NewPowerEstimator(a, b),
		fmt.Sprintf("BPR = %.4f * RPB^%.4f", a, b), x, y)
}

func fitLinear(x, y []float64) *Model {
	a, b := leastSquares(x, y)

	return newModel(ModelTypeLinear, NewLinearEstimator(a, b),
		fmt.Sprintf("BPR = %.4f + %.6f * RPB", a, b), x, y)
}

// goodnessOfFit returns R² = 1 - SS_res/SS_tot and the RMSE of predicted
// against observed. R² is 0 when observed has no variance.
func goodnessOfFit(observed, predicted []float64) (r2, rmse float64) {
	n := len(observed)
	if n == 0 {
		return 0, 0
	}

	mean := 0.0
	for _, v := range observed {
		mean += v
	}
	mean /= float64(n)

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		residual := observed[i] - predicted[i]
		ssRes += residual * residual
	}

	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return r2, math.Sqrt(ssRes / float64(n))
}
