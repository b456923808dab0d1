package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/stabplot/internal/analysis"
	"github.com/san-kum/stabplot/internal/report"
)

var (
	ErrUnsupportedFormat = errors.New("render: unsupported image format")
	ErrEmptyResult       = errors.New("render: result has no data")
)

var (
	traceBlue = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	traceRed  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	refBlack  = color.RGBA{A: 255}
	gridGray  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
)

// Figure is the three-panel analysis figure: magnitude and phase stacked
// on the left, step response on the right, with a shared title on top.
type Figure struct {
	Title     string
	Magnitude *plot.Plot
	Phase     *plot.Plot
	Step      *plot.Plot

	markers int
}

// NewFigure builds the plots for res. Crossover markers are drawn only for
// crossovers with a positive frequency.
func NewFigure(res *analysis.Result) (*Figure, error) {
	if res == nil || len(res.Bode.Omega) == 0 || len(res.Step.Time) == 0 {
		return nil, ErrEmptyResult
	}

	f := &Figure{Title: report.Suptitle(res.Verdict)}
	hz := res.Bode.Hz()
	m := res.Margin

	mag, err := frequencyPlot(report.MagnitudeTitle(m), "Magnitude (dB)", hz, res.Bode.MagDB())
	if err != nil {
		return nil, fmt.Errorf("magnitude: %w", err)
	}
	if err := addReference(mag, hz, 0, nil); err != nil {
		return nil, err
	}

	phase, err := frequencyPlot(report.PhaseTitle(m), "Phase (deg)", hz, res.Bode.PhaseDeg())
	if err != nil {
		return nil, fmt.Errorf("phase: %w", err)
	}
	phase.X.Label.Text = "Frequency (Hz)"
	if err := addReference(phase, hz, -180, []vg.Length{vg.Points(5), vg.Points(3)}); err != nil {
		return nil, err
	}

	if m.HasGainCrossover() {
		fgc := report.Hz(m.GainCrossover)
		if err := f.addMarker(mag, fgc, 0); err != nil {
			return nil, err
		}
		if err := f.addMarker(phase, fgc, -180+m.PhaseMargin); err != nil {
			return nil, err
		}
	}
	if m.HasPhaseCrossover() {
		fpc := report.Hz(m.PhaseCrossover)
		if err := f.addMarker(mag, fpc, -m.GainMarginDB()); err != nil {
			return nil, err
		}
		if err := f.addMarker(phase, fpc, -180); err != nil {
			return nil, err
		}
	}

	step := plot.New()
	step.Title.Text = "Step Response"
	step.X.Label.Text = "Time (seconds)"
	step.Y.Label.Text = "Amplitude"
	stylePlot(step)
	line, err := plotter.NewLine(xys(res.Step.Time, res.Step.Output))
	if err != nil {
		return nil, fmt.Errorf("step: %w", err)
	}
	line.LineStyle.Color = traceRed
	line.LineStyle.Width = vg.Points(2)
	step.Add(grid(), line)

	f.Magnitude, f.Phase, f.Step = mag, phase, step
	return f, nil
}

// Markers is the number of crossover markers placed on the frequency plots.
func (f *Figure) Markers() int { return f.markers }

func frequencyPlot(title, ylabel string, hz, ys []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	stylePlot(p)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}

	line, err := plotter.NewLine(xys(hz, ys))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = traceBlue
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(grid(), line)
	return p, nil
}

func addReference(p *plot.Plot, hz []float64, y float64, dashes []vg.Length) error {
	ref, err := plotter.NewLine(plotter.XYs{{X: hz[0], Y: y}, {X: hz[len(hz)-1], Y: y}})
	if err != nil {
		return err
	}
	ref.LineStyle.Width = vg.Points(1)
	ref.LineStyle.Color = refBlack
	if dashes != nil {
		ref.LineStyle.Color = traceRed
		ref.LineStyle.Dashes = dashes
	}
	p.Add(ref)
	return nil
}

func (f *Figure) addMarker(p *plot.Plot, x, y float64) error {
	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
	if err != nil {
		return fmt.Errorf("marker at %g Hz: %w", x, err)
	}
	s.GlyphStyle.Color = traceRed
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(4)
	p.Add(s)
	f.markers++
	return nil
}

func grid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = gridGray
	g.Horizontal.Color = gridGray
	return g
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Title.Padding = vg.Points(6)
	p.X.Label.TextStyle.Font.Size = vg.Points(10)
	p.Y.Label.TextStyle.Font.Size = vg.Points(10)
	p.X.Tick.Label.Font.Size = vg.Points(8)
	p.Y.Tick.Label.Font.Size = vg.Points(8)
	p.X.Padding = vg.Points(4)
	p.Y.Padding = vg.Points(4)
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Draw lays the figure out on c: a title band on top, the frequency plots
// in the left column and the step response filling the right column.
func (f *Figure) Draw(c draw.Canvas) {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())

	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y

	title := text.Style{
		Color:   refBlack,
		Font:    font.From(plot.DefaultFont, vg.Points(16)),
		XAlign:  text.XCenter,
		YAlign:  text.YTop,
		Handler: plot.DefaultTextHandler,
	}
	c.FillText(title, vg.Point{X: c.Min.X + w/2, Y: c.Max.Y - h*0.01}, f.Title)

	pad := vg.Points(6)
	body := draw.Crop(c, pad, -pad, h*0.03, -h*0.05)
	bw := body.Max.X - body.Min.X
	bh := body.Max.Y - body.Min.Y

	left := draw.Crop(body, 0, -bw/2-pad, 0, 0)
	right := draw.Crop(body, bw/2+pad, 0, 0, 0)

	f.Magnitude.Draw(draw.Crop(left, 0, 0, bh/2+pad, 0))
	f.Phase.Draw(draw.Crop(left, 0, 0, 0, -bh/2-pad))
	f.Step.Draw(right)
}

// Format maps a file extension to an encoder name.
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".svg":
		return "svg", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteTo renders the figure in the named format.
func (f *Figure) WriteTo(w io.Writer, format string, width, height vg.Length, dpi int) (int64, error) {
	switch format {
	case "png", "jpeg":
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		f.Draw(draw.New(c))
		if format == "jpeg" {
			return vgimg.JpegCanvas{Canvas: c}.WriteTo(w)
		}
		return vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	case "svg":
		c := vgsvg.New(width, height)
		f.Draw(draw.New(c))
		return c.WriteTo(w)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes the figure to path, creating parent directories. The
// extension picks the encoder.
func (f *Figure) Save(path string, width, height vg.Length, dpi int) error {
	format, err := Format(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", format, err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	n, err := f.WriteTo(bw, format, width, height, dpi)
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	log.Debug().Str("path", path).Int64("bytes", n).Msg("figure encoded")
	return file.Close()
}
