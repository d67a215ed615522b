package widget

import (
	"fmt"
	"io"
	"net/url"

	chart "github.com/wcharczuk/go-chart/v2"
)

var (
	// SlopeRange bounds the slope slider.
	SlopeRange = Range{Min: -1, Max: 3, Step: 0.1}
	// InterceptRange bounds the intercept slider.
	InterceptRange = Range{Min: -5, Max: 5, Step: 0.5}
	// LineDomain is the x interval the line is drawn over.
	LineDomain = Range{Min: 0, Max: 7}
)

const (
	defaultSlope     = 1.0
	defaultIntercept = 1.0
)

// samplePoints are the six data points drawn under the line.
var samplePoints = [...]Point{
	{X: 1, Y: 2.8},
	{X: 2, Y: 5.3},
	{X: 3, Y: 6.9},
	{X: 4, Y: 9.2},
	{X: 5, Y: 10.8},
	{X: 6, Y: 13.1},
}

// LineOverlay draws y = Slope*x + Intercept over the fixed sample points.
// Nothing is fitted: the sliders pick the line.
type LineOverlay struct {
	Slope         float64
	Intercept     float64
	ShowResiduals bool
}

// NewLineOverlay returns a LineOverlay in its initial state.
func NewLineOverlay() LineOverlay {
	return LineOverlay{Slope: defaultSlope, Intercept: defaultIntercept}
}

// DecodeLineOverlay reads slope, intercept and residuals from q.
func DecodeLineOverlay(q url.Values) LineOverlay {
	return LineOverlay{
		Slope:         floatParam(q, "slope", SlopeRange, defaultSlope),
		Intercept:     floatParam(q, "intercept", InterceptRange, defaultIntercept),
		ShowResiduals: boolParam(q, "residuals"),
	}
}

// Kind implements Widget.
func (l *LineOverlay) Kind() Kind { return KindLineOverlay }

// SetSlope sets the slope, clamped to SlopeRange.
func (l *LineOverlay) SetSlope(v float64) { l.Slope = SlopeRange.Clamp(v) }

// SetIntercept sets the intercept, clamped to InterceptRange.
func (l *LineOverlay) SetIntercept(v float64) { l.Intercept = InterceptRange.Clamp(v) }

// Predict returns the line's y at x.
func (l *LineOverlay) Predict(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Points returns a copy of the fixed sample points.
func (l *LineOverlay) Points() []Point {
	pts := make([]Point, len(samplePoints))
	copy(pts, samplePoints[:])
	return pts
}

// Line returns the drawn line across LineDomain.
func (l *LineOverlay) Line() Segment {
	return Segment{
		From: Point{X: LineDomain.Min, Y: l.Predict(LineDomain.Min)},
		To:   Point{X: LineDomain.Max, Y: l.Predict(LineDomain.Max)},
	}
}

// Residuals returns one vertical segment per sample point, from the point
// to the line at the point's x. Empty when ShowResiduals is off.
func (l *LineOverlay) Residuals() []Segment {
	if !l.ShowResiduals {
		return nil
	}
	segs := make([]Segment, len(samplePoints))
	for i, p := range samplePoints {
		segs[i] = Segment{From: p, To: Point{X: p.X, Y: l.Predict(p.X)}}
	}
	return segs
}

// Equation formats the line as shown in the readout.
func (l *LineOverlay) Equation() string {
	b := roundTenth(l.Intercept)
	return fmt.Sprintf("y = %sx %s %s", formatTenth(l.Slope), sign(b), formatTenth(abs(b)))
}

// Encode implements Widget.
func (l *LineOverlay) Encode() url.Values {
	q := url.Values{}
	q.Set("slope", formatFloat(l.Slope))
	q.Set("intercept", formatFloat(l.Intercept))
	if l.ShowResiduals {
		q.Set("residuals", formatBool(true))
	}
	return q
}

// Controls implements Widget.
func (l *LineOverlay) Controls() []Control {
	return []Control{
		SlopeRange.control("slope", "Slope", l.Slope),
		InterceptRange.control("intercept", "Intercept", l.Intercept),
		{Type: ControlCheckbox, Name: "residuals", Label: "Show residuals", Value: "1", Checked: l.ShowResiduals},
	}
}

// Readouts implements Widget.
func (l *LineOverlay) Readouts() []Readout {
	return []Readout{
		{Label: "Line", Value: l.Equation()},
		{Label: "Slope", Value: formatTenth(l.Slope)},
		{Label: "Intercept", Value: formatTenth(l.Intercept)},
	}
}

// Render implements Widget.
func (l *LineOverlay) Render(w io.Writer) error {
	return renderSVG(l.chart(), w)
}

func (l *LineOverlay) chart() chart.Chart {
	series := []chart.Series{
		scatterSeries("data", l.Points(), scatterStyle(pointColor, 5)),
		segmentSeries("line", l.Line(), chart.Style{StrokeColor: lineColor, StrokeWidth: 2}),
	}
	for i, r := range l.Residuals() {
		series = append(series, segmentSeries(fmt.Sprintf("residual-%d", i), r, chart.Style{
			StrokeColor:     residualColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 3},
		}))
	}

	return chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  "x",
			Range: &chart.ContinuousRange{Min: LineDomain.Min, Max: LineDomain.Max},
		},
		YAxis: chart.YAxis{Name: "y"},
		Series: series,
	}
}

func sign(v float64) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
