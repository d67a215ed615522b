package widget

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	// MinK and MaxK bound the k slider.
	MinK = 2
	MaxK = 5
	// MaxIteration caps the cosmetic iteration counter.
	MaxIteration = 999

	defaultK = 3
)

// Cluster actions submitted by the control buttons.
const (
	ActionToggle = "toggle"
	ActionStep   = "step"
	ActionReset  = "reset"
)

// GroupPoint is a fixed sample point with its fixed group index.
type GroupPoint struct {
	Point
	Group int
}

// clusterPoints are twenty points in five visual groups. Group membership is
// literal and does not depend on k.
var clusterPoints = [...]GroupPoint{
	{Point{1.0, 1.2}, 0}, {Point{1.5, 0.8}, 0}, {Point{0.8, 1.7}, 0}, {Point{1.7, 1.5}, 0},
	{Point{5.0, 5.3}, 1}, {Point{5.6, 4.9}, 1}, {Point{4.7, 5.8}, 1}, {Point{5.4, 5.9}, 1},
	{Point{8.2, 1.4}, 2}, {Point{8.8, 1.0}, 2}, {Point{7.9, 1.9}, 2}, {Point{8.6, 2.1}, 2},
	{Point{1.6, 8.1}, 3}, {Point{2.2, 8.7}, 3}, {Point{1.2, 8.9}, 3}, {Point{2.0, 7.6}, 3},
	{Point{8.4, 8.3}, 4}, {Point{9.0, 8.8}, 4}, {Point{7.8, 8.9}, 4}, {Point{8.7, 7.7}, 4},
}

// fixedCentroids are drawn as markers; the first k are shown.
var fixedCentroids = [...]Point{
	{X: 1.25, Y: 1.3},
	{X: 5.175, Y: 5.475},
	{X: 8.375, Y: 1.6},
	{X: 1.75, Y: 8.325},
	{X: 8.475, Y: 8.425},
}

var clusterDomain = Range{Min: 0, Max: 10}

// ClusterDisplay shows fixed clusters with k of the fixed centroids.
// The running flag and iteration counter are cosmetic: no assignment or
// update step ever executes.
type ClusterDisplay struct {
	K         int
	Running   bool
	Iteration int
}

// NewClusterDisplay returns a ClusterDisplay in its initial state.
func NewClusterDisplay() ClusterDisplay {
	return ClusterDisplay{K: defaultK}
}

// DecodeClusterDisplay reads k, running and iter from q and then applies the
// one-shot action parameter, if any.
func DecodeClusterDisplay(q url.Values) ClusterDisplay {
	c := ClusterDisplay{
		K:         intParam(q, "k", MinK, MaxK, defaultK),
		Running:   boolParam(q, "running"),
		Iteration: intParam(q, "iter", 0, MaxIteration, 0),
	}
	c.Apply(q.Get("action"))
	return c
}

// Kind implements Widget.
func (c *ClusterDisplay) Kind() Kind { return KindClusters }

// SetK sets k, clamped to [MinK, MaxK].
func (c *ClusterDisplay) SetK(k int) {
	switch {
	case k < MinK:
		k = MinK
	case k > MaxK:
		k = MaxK
	}
	c.K = k
}

// Apply performs a control action. Unknown actions are ignored.
func (c *ClusterDisplay) Apply(action string) {
	switch action {
	case ActionToggle:
		c.Toggle()
	case ActionStep:
		c.Step()
	case ActionReset:
		c.Reset()
	}
}

// Toggle flips the running flag. Only the status label changes.
func (c *ClusterDisplay) Toggle() { c.Running = !c.Running }

// Step advances the displayed iteration counter.
func (c *ClusterDisplay) Step() {
	if c.Iteration < MaxIteration {
		c.Iteration++
	}
}

// Reset sets the iteration counter to zero and stops the display.
func (c *ClusterDisplay) Reset() {
	c.Iteration = 0
	c.Running = false
}

// Status is the label for the running flag.
func (c *ClusterDisplay) Status() string {
	if c.Running {
		return "Running"
	}
	return "Paused"
}

// Centroids returns the first k fixed centroids.
func (c *ClusterDisplay) Centroids() []Point {
	k := c.K
	if k < 0 {
		k = 0
	}
	if k > len(fixedCentroids) {
		k = len(fixedCentroids)
	}
	out := make([]Point, k)
	copy(out, fixedCentroids[:k])
	return out
}

// Points returns a copy of the fixed sample points.
func (c *ClusterDisplay) Points() []GroupPoint {
	pts := make([]GroupPoint, len(clusterPoints))
	copy(pts, clusterPoints[:])
	return pts
}

// ColorIndex returns the palette index used for group g.
func (c *ClusterDisplay) ColorIndex(g int) int {
	k := c.K
	if k <= 0 {
		k = 1
	}
	return g % k % len(Palette)
}

// Encode implements Widget.
func (c *ClusterDisplay) Encode() url.Values {
	q := url.Values{}
	q.Set("k", strconv.Itoa(c.K))
	q.Set("iter", strconv.Itoa(c.Iteration))
	if c.Running {
		q.Set("running", formatBool(true))
	}
	return q
}

// Controls implements Widget.
func (c *ClusterDisplay) Controls() []Control {
	toggle := "Start"
	if c.Running {
		toggle = "Pause"
	}
	return []Control{
		{
			Type:  ControlRange,
			Name:  "k",
			Label: "Clusters (k)",
			Value: strconv.Itoa(c.K),
			Min:   strconv.Itoa(MinK),
			Max:   strconv.Itoa(MaxK),
			Step:  "1",
		},
		{Type: ControlButton, Name: "action", Label: toggle, Value: ActionToggle},
		{Type: ControlButton, Name: "action", Label: "Step", Value: ActionStep},
		{Type: ControlButton, Name: "action", Label: "Reset", Value: ActionReset},
	}
}

// Readouts implements Widget.
func (c *ClusterDisplay) Readouts() []Readout {
	return []Readout{
		{Label: "k", Value: strconv.Itoa(c.K)},
		{Label: "Iteration", Value: strconv.Itoa(c.Iteration)},
		{Label: "Status", Value: c.Status()},
	}
}

// Render implements Widget.
func (c *ClusterDisplay) Render(w io.Writer) error {
	return renderSVG(c.chart(), w)
}

func (c *ClusterDisplay) chart() chart.Chart {
	byColor := make(map[int][]Point)
	for _, p := range clusterPoints {
		idx := c.ColorIndex(p.Group)
		byColor[idx] = append(byColor[idx], p.Point)
	}

	var series []chart.Series
	for idx := range Palette {
		pts, ok := byColor[idx]
		if !ok {
			continue
		}
		series = append(series, scatterSeries(fmt.Sprintf("cluster-%d", idx), pts, scatterStyle(hexColor(Palette[idx]), 5)))
	}
	series = append(series, scatterSeries("centroids", c.Centroids(), scatterStyle(centroidColor, 10)))

	rng := &chart.ContinuousRange{Min: clusterDomain.Min, Max: clusterDomain.Max}
	return chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: "x₁", Range: rng},
		YAxis:  chart.YAxis{Name: "x₂", Range: &chart.ContinuousRange{Min: clusterDomain.Min, Max: clusterDomain.Max}},
		Series: series,
	}
}
