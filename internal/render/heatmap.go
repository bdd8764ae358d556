// Package render draws methane cost grids as annotated heat-maps.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"energy-econ/internal/grid"
	"energy-econ/internal/model"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Options controls the rendered image. Zero values fall back to defaults.
type Options struct {
	Width   vg.Length
	Height  vg.Length
	Title   string
	Palette string // ColorBrewer sequential palette name
	Format  string // png, svg, pdf, ...
}

const (
	defaultPalette = "YlGnBu"
	paletteColors  = 9
)

func (o Options) withDefaults(g *grid.Grid) Options {
	if o.Width <= 0 {
		o.Width = vg.Length(g.Cols())*1.2*vg.Inch + 2*vg.Inch
	}
	if o.Height <= 0 {
		o.Height = vg.Length(g.Rows())*0.6*vg.Inch + 2*vg.Inch
	}
	if o.Title == "" {
		o.Title = fmt.Sprintf("Methane cost (%s)", g.Unit.Label())
	}
	if o.Palette == "" {
		o.Palette = defaultPalette
	}
	if o.Format == "" {
		o.Format = "png"
	}
	return o
}

// FileName is the artifact name for a unit, e.g. methane_cost_kcf.png.
func FileName(u model.Unit, format string) string {
	if format == "" {
		format = "png"
	}
	return fmt.Sprintf("methane_cost_%s.%s", u, format)
}

// cells adapts a Grid to plotter.GridXYZ. Cells sit on integer coordinates so
// every price gets an equally sized cell regardless of axis spacing.
type cells struct{ g *grid.Grid }

func (c cells) Dims() (int, int) { return c.g.Cols(), c.g.Rows() }
func (c cells) Z(col, row int) float64 { return c.g.At(row, col) }
func (c cells) X(col int) float64 { return float64(col) }
func (c cells) Y(row int) float64 { return float64(row) }

// currencyTicks places one tick per cell, labelled with its price.
type currencyTicks []float64

func (t currencyTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(t))
	for i, v := range t {
		pos := float64(i)
		if pos < min || pos > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: pos, Label: FormatCurrency(v)})
	}
	return ticks
}

// FormatCurrency renders a price the way axis ticks and annotations show it.
func FormatCurrency(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// ValidPalette reports whether name is a known ColorBrewer sequential palette.
// The empty name selects the default and is valid.
func ValidPalette(name string) error {
	if name == "" {
		return nil
	}
	if _, err := brewer.GetPalette(brewer.TypeSequential, name, paletteColors); err != nil {
		return fmt.Errorf("palette %q: %w", name, err)
	}
	return nil
}

// HeatMap builds the annotated plot for g.
func HeatMap(g *grid.Grid, opts Options) (*plot.Plot, error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, grid.ErrEmptyAxis
	}
	opts = opts.withDefaults(g)

	pal, err := brewer.GetPalette(brewer.TypeSequential, opts.Palette, paletteColors)
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", opts.Palette, err)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "CO2 price (USD/kg)"
	p.Y.Label.Text = "H2 price (USD/kg)"
	p.X.Tick.Marker = currencyTicks(g.CO2Prices)
	p.Y.Tick.Marker = currencyTicks(g.H2Prices)

	hm := plotter.NewHeatMap(cells{g: g}, pal)
	if hm.Min == hm.Max {
		// A flat grid has no color scale; center its value in a small band.
		pad := math.Max(0.5, math.Abs(hm.Min)*0.01)
		hm.Min -= pad
		hm.Max += pad
	}
	p.Add(hm)

	labels, err := annotations(g)
	if err != nil {
		return nil, err
	}
	p.Add(labels)
	return p, nil
}

func annotations(g *grid.Grid) (*plotter.Labels, error) {
	n := g.Rows() * g.Cols()
	xys := make(plotter.XYs, 0, n)
	texts := make([]string, 0, n)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			texts = append(texts, fmt.Sprintf("%.2f", g.At(r, c)))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("cell labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	return labels, nil
}

// Write renders g to w in opts.Format.
func Write(w io.Writer, g *grid.Grid, opts Options) error {
	p, err := HeatMap(g, opts)
	if err != nil {
		return err
	}
	opts = opts.withDefaults(g)
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes the heat-map for g into dir, naming the file after g's unit.
// It returns the path of the written file.
func Save(dir string, g *grid.Grid, opts Options) (string, error) {
	if g == nil {
		return "", grid.ErrEmptyAxis
	}
	opts = opts.withDefaults(g)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(g.Unit, opts.Format))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, g, opts); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Render evaluates the grid and saves its heat-map. An invalid unit fails
// before anything is written to dir.
func Render(dir string, co2Prices, h2Prices []float64, unit string, coeffs model.MethaneCoefficients, opts Options) (*grid.Grid, string, error) {
	g, err := grid.Evaluate(co2Prices, h2Prices, unit, coeffs)
	if err != nil {
		return nil, "", err
	}
	path, err := Save(dir, g, opts)
	if err != nil {
		return nil, "", err
	}
	return g, path, nil
}
