package regression

import "fmt"

// Model is one fitted regression model.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the fitted coefficients, in Estimator order.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, at most 1).
	RSquared float64
	// RMSE is the root mean square error in bytes per row.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator evaluates the model.
	Estimator Estimator
}

// String returns a summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Sample is one measured point.
type Sample struct {
	// Rows is the number of rows encoded into the blob.
	Rows int
	// Bytes is the blob size.
	Bytes int
	// DictionaryKeys is the number of distinct keys among the rows.
	DictionaryKeys int
}

// BytesPerRow returns Bytes divided by Rows.
func (s Sample) BytesPerRow() float64 {
	if s.Rows == 0 {
		return 0
	}

	return float64(s.Bytes) / float64(s.Rows)
}

// Result is the outcome of an analysis.
type Result struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains every fitted model ranked by R², best first.
	AllModels []*Model
	// Samples are the measured points the models were fitted to.
	Samples []Sample
}

// String returns a summary of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d, Samples: %d}",
		r.BestFit, len(r.AllModels), len(r.Samples))
}
