package widget

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 480
	chartHeight = 320
)

// Point is a fixed sample coordinate.
type Point struct {
	X float64
	Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// Palette holds the cluster colors. Index i is reused by every group g with
// g % k == i.
var Palette = []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#8b5cf6"}

var (
	pointColor    = drawing.ColorFromHex("475569")
	lineColor     = drawing.ColorFromHex("2563eb")
	residualColor = drawing.ColorFromHex("f97316")
	centroidColor = drawing.ColorFromHex("111827")
)

// scatterStyle renders dots only, no connecting stroke.
func scatterStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    width,
		DotColor:    col,
	}
}

func scatterSeries(name string, pts []Point, style chart.Style) chart.ContinuousSeries {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: style}
}

func segmentSeries(name string, s Segment, style chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{s.From.X, s.To.X},
		YValues: []float64{s.From.Y, s.To.Y},
		Style:   style,
	}
}

func hexColor(hex string) drawing.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	return drawing.ColorFromHex(hex)
}

func renderSVG(ch chart.Chart, w io.Writer) error {
	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("widget: render svg: %w", err)
	}
	return nil
}
