package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// trendDegree is the polynomial degree of the fitted trend curve.
const trendDegree = 2

// trendSamples is the number of points used to draw the fitted curve.
const trendSamples = 100

// PolyFit fits a least-squares polynomial of the given degree through the
// points. Coefficients are returned in ascending power order, so
// coefficients[0] is the constant term. Fitting needs more points than the
// degree.
func PolyFit(xs, ys []float64, degree int) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("chart: x/y length mismatch: %d != %d", len(xs), len(ys))
	}
	if len(xs) <= degree {
		return nil, fmt.Errorf("chart: need more than %d points for a degree %d fit, got %d", degree, degree, len(xs))
	}

	// Least squares via QR factorization of the Vandermonde system.
	vandermonde := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= degree; j++ {
			vandermonde.Set(i, j, v)
			v *= x
		}
	}

	var qr mat.QR
	qr.Factorize(vandermonde)

	var solution mat.VecDense
	if err := qr.SolveVecTo(&solution, false, mat.NewVecDense(len(ys), ys)); err != nil {
		return nil, fmt.Errorf("chart: trend fit failed: %w", err)
	}

	coefficients := make([]float64, degree+1)
	for i := range coefficients {
		coefficients[i] = solution.AtVec(i)
	}
	return coefficients, nil
}

// PolyEval evaluates a polynomial with ascending-power coefficients at x.
func PolyEval(coefficients []float64, x float64) float64 {
	y := 0.0
	for i := len(coefficients) - 1; i >= 0; i-- {
		y = y*x + coefficients[i]
	}
	return y
}

// trendLine fits the trend polynomial and samples it into a dashed curve
// spanning the x range of the data.
func trendLine(xs, ys []float64) (*plotter.Line, error) {
	coefficients, err := PolyFit(xs, ys, trendDegree)
	if err != nil {
		return nil, err
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	step := (hi - lo) / float64(trendSamples-1)
	points := make(plotter.XYs, trendSamples)
	for i := range points {
		x := lo + float64(i)*step
		points[i].X = x
		points[i].Y = PolyEval(coefficients, x)
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build trend curve: %w", err)
	}
	line.LineStyle.Color = color.RGBA{R: 0xd6, G: 0x2f, B: 0x2f, A: 0xff}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	return line, nil
}
