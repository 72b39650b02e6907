package chart

import (
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
)

// Grid is a rectangular sample grid of z=f(x,y) values for contour
// rendering. It satisfies the plotter grid interface, column-major on x.
type Grid struct {
	xs []float64
	ys []float64
	zs [][]float64
}

// NewGrid samples f on an n-by-n mesh over [xmin,xmax] and [ymin,ymax].
// Fewer than two samples per axis cannot form a surface, so n is clamped
// to two.
func NewGrid(xmin, xmax, ymin, ymax float64, n int, f func(x, y float64) float64) Grid {
	if n < 2 {
		n = 2
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	xstep := (xmax - xmin) / float64(n-1)
	ystep := (ymax - ymin) / float64(n-1)
	for i := range xs {
		xs[i] = xmin + float64(i)*xstep
		ys[i] = ymin + float64(i)*ystep
	}

	zs := make([][]float64, n)
	for r := range zs {
		row := make([]float64, n)
		for c := range row {
			row[c] = f(xs[c], ys[r])
		}
		zs[r] = row
	}
	return Grid{xs: xs, ys: ys, zs: zs}
}

// Dims returns the grid dimensions.
func (g Grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// Z returns the sampled value at column c, row r.
func (g Grid) Z(c, r int) float64 { return g.zs[r][c] }

// X returns the x coordinate of column c.
func (g Grid) X(c int) float64 { return g.xs[c] }

// Y returns the y coordinate of row r.
func (g Grid) Y(r int) float64 { return g.ys[r] }

// zRange returns the smallest and largest sampled values.
func (g Grid) zRange() (lo, hi float64) {
	lo, hi = g.zs[0][0], g.zs[0][0]
	for _, row := range g.zs {
		for _, z := range row {
			if z < lo {
				lo = z
			}
			if z > hi {
				hi = z
			}
		}
	}
	return lo, hi
}

// contourLevels is the number of overlay isolines.
const contourLevels = 9

// Contour renders the grid as a filled surface with contour lines
// overlaid.
func Contour(path string, cfg Config, grid Grid) error {
	if len(grid.xs) == 0 || len(grid.ys) == 0 {
		return ErrNoData
	}

	lo, hi := grid.zRange()
	if hi == lo {
		// A flat surface still needs a non-empty palette range.
		hi = lo + 1
	}

	colors := moreland.SmoothBlueRed()
	colors.SetMin(lo)
	colors.SetMax(hi)
	pal := colors.Palette(contourLevels + 3)

	levels := make([]float64, contourLevels)
	step := (hi - lo) / float64(contourLevels+1)
	for i := range levels {
		levels[i] = lo + float64(i+1)*step
	}

	heat := plotter.NewHeatMap(grid, pal)
	heat.Min, heat.Max = lo, hi

	p := newPlot(cfg)
	p.Add(heat)
	p.Add(plotter.NewContour(grid, levels, pal))

	return save(p, path)
}
