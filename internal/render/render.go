// Package render draws the reject summary as a PNG bar chart.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"rejectmonitor/internal/fileutil"
	"rejectmonitor/internal/models"
)

// Chart text.
const (
	Title      = "Total Reject per Process"
	XAxisLabel = "Process"
	YAxisLabel = "Total Reject"
	EmptyText  = "No Data Available"
)

const (
	defaultWidth  = 1200
	defaultHeight = 600

	barWidth   = 40
	barSpacing = 20
)

// Renderer writes the chart image to a fixed path, replacing it on every call.
// The zero value renders at the default size and stores nothing.
type Renderer struct {
	path   string
	width  int
	height int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSize sets the minimum image size in pixels. Non-positive values keep
// the default.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}

// New creates a renderer that writes to path. An empty path only returns
// the image.
func New(path string, opts ...Option) *Renderer {
	r := &Renderer{path: path, width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) size() (int, int) {
	width, height := r.width, r.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// Render draws s, stores it at the renderer's path and returns the PNG bytes.
// The empty signal, or a summary without any bars, yields the
// "No Data Available" image.
func (r *Renderer) Render(ctx context.Context, s models.Summary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, height := r.size()
	var (
		data []byte
		err  error
	)
	if s.Empty || len(s.Totals) == 0 {
		data, err = emptyImage(width, height)
	} else {
		data, err = barChart(s, width, height)
	}
	if err != nil {
		return nil, err
	}

	if r.path != "" {
		err := fileutil.WriteAtomic(r.path, 0o644, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store chart: %w", err)
		}
	}
	return data, nil
}

func barChart(s models.Summary, minWidth, height int) ([]byte, error) {
	bars := make([]chart.Value, 0, len(s.Totals))
	lo, hi := 0.0, 0.0
	for _, t := range s.Totals {
		bars = append(bars, chart.Value{Label: t.Process, Value: t.Total})
		lo = min(lo, t.Total)
		hi = max(hi, t.Total)
	}
	if hi <= lo {
		hi = lo + 1
	}
	hi += (hi - lo) * 0.1

	// Wide enough that many processes keep readable bars.
	width := max(minWidth, len(bars)*(barWidth+barSpacing)+160)

	graph := chart.BarChart{
		Title:  Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 70, Right: 20, Bottom: 120},
		},
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		XAxis:        chart.Style{TextRotationDegrees: 45.0},
		YAxis: chart.YAxis{
			Name:  YAxisLabel,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
		Elements: []chart.Renderable{
			xAxisLabel(XAxisLabel, width, height),
			yAxisLabel(YAxisLabel, height),
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// xAxisLabel centres text along the bottom edge of the image.
func xAxisLabel(text string, width, height int) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		style := chart.Style{FontSize: 11, FontColor: drawing.ColorBlack}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)
		tb := r.MeasureText(text)
		r.Text(text, (width-tb.Width())/2, height-12)
	}
}

// yAxisLabel writes text vertically along the left edge of the image.
func yAxisLabel(text string, height int) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		style := chart.Style{FontSize: 11, FontColor: drawing.ColorBlack}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)
		tb := r.MeasureText(text)
		r.SetTextRotation(chart.DegreesToRadians(270))
		r.Text(text, 20, (height+tb.Width())/2)
		r.ClearTextRotation()
	}
}

// emptyImage draws EmptyText centred on a white canvas.
func emptyImage(width, height int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face}
	textWidth := dr.MeasureString(EmptyText).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	x := (width - textWidth) / 2
	y := (height-textHeight)/2 + metrics.Ascent.Ceil()
	dr.Dot = fixed.P(x, y)
	dr.DrawString(EmptyText)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode empty chart: %w", err)
	}
	return buf.Bytes(), nil
}
