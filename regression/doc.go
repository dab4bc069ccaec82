// Package regression estimates column blob sizes from a sample column.
//
// The analyzer encodes growing prefixes of a raw column into column blobs and
// measures bytes per row (BPR) against rows per blob (RPB). Dictionary payload
// dominates small blobs, so BPR falls as RPB grows until the code stream
// dominates. Several least-squares models are fitted to the (RPB, BPR) points
// and ranked by R²:
//
//   - Hyperbolic:  BPR = a + b / RPB
//   - Logarithmic: BPR = a + b * ln(RPB)
//   - Power:       BPR = a * RPB^b
//   - Linear:      BPR = a + b * RPB
//
// Typical use is capacity planning before choosing a blob size:
//
//	result, err := regression.Analyze(raw, regression.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	bytes := result.BestFit.Estimator.Estimate(100_000) * 100_000
//
// A fitted model can be stored as its name and coefficients and restored with
// NewEstimator.
package regression
