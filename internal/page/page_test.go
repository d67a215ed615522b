package page

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/iayr1/algovista-sub001/catalog"
	"github.com/iayr1/algovista-sub001/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeSVG = `<svg xmlns="http://www.w3.org/2000/svg" id="fake"></svg>`

func renderDetail(t *testing.T, r *Renderer, d catalog.Descriptor, tab Tab, w widget.Widget) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Detail(&buf, NewDetailView(d, tab, w, []byte(fakeSVG), QueryLinks)))
	return buf.String()
}

func TestDetail_Header(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, d := range catalog.Default().All() {
		t.Run(d.ID, func(t *testing.T) {
			w, err := widget.Default(d.Widget)
			require.NoError(t, err)

			out := html.UnescapeString(renderDetail(t, r, d, TabOverview, w))
			assert.Contains(t, out, "<h1>"+d.Name+"</h1>")
			assert.Contains(t, out, `data-field="category">`+d.Category+"<")
			assert.Contains(t, out, `data-field="type">`+d.Type+"<")
			assert.Contains(t, out, `data-field="difficulty">`+d.Difficulty.String()+"<")
			assert.Contains(t, out, d.Difficulty.Badge())
			assert.Contains(t, out, d.Summary)
		})
	}
}

func TestDetail_Tabs(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	d, err := catalog.Default().Get(catalog.LinearRegressionID)
	require.NoError(t, err)
	w, err := widget.Default(d.Widget)
	require.NoError(t, err)

	out := html.UnescapeString(renderDetail(t, r, d, TabFormulas, w))
	assert.Contains(t, out, `id="panel-formulas"`)
	for _, f := range d.Formulas {
		assert.Contains(t, out, f.Expr)
	}
	assert.NotContains(t, out, fakeSVG)

	out = html.UnescapeString(renderDetail(t, r, d, TabCode, w))
	assert.Contains(t, out, "from sklearn.linear_model import LinearRegression")
	assert.Contains(t, out, `class="language-python"`)

	out = html.UnescapeString(renderDetail(t, r, d, TabUseCases, w))
	for _, u := range d.UseCases {
		assert.Contains(t, out, u)
	}

	out = renderDetail(t, r, d, TabDefinition, w)
	assert.Contains(t, out, `id="panel-definition"`)
}

func TestDetail_Visualization(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	d, err := catalog.Default().Get(catalog.KMeansID)
	require.NoError(t, err)

	c := widget.ClusterDisplay{K: 4, Running: true, Iteration: 7}
	out := renderDetail(t, r, d, TabVisualization, &c)

	assert.Contains(t, out, fakeSVG)
	assert.Contains(t, out, `data-widget="clusters"`)
	// state not covered by a control travels in hidden fields
	assert.Contains(t, out, `name="iter" value="7"`)
	assert.Contains(t, out, `name="running" value="1"`)
	assert.Contains(t, out, `name="k" min="2" max="5" step="1" value="4"`)
	assert.Contains(t, out, `value="reset">Reset</button>`)
	assert.Contains(t, out, "Running")
}

func TestNewDetailView_TabLinksKeepState(t *testing.T) {
	d, err := catalog.Default().Get(catalog.LinearRegressionID)
	require.NoError(t, err)
	l := widget.LineOverlay{Slope: 2, Intercept: 1}

	v := NewDetailView(d, TabVisualization, &l, nil, QueryLinks)
	require.Len(t, v.Tabs, len(Tabs))
	for _, link := range v.Tabs {
		assert.True(t, strings.HasPrefix(link.Href, "/algorithms/linear-regression?"), link.Href)
		assert.Contains(t, link.Href, "slope=2")
		assert.Equal(t, link.Tab == TabVisualization, link.Active)
	}
	assert.Contains(t, v.Tabs[4].Href, "tab=visualization")
	assert.NotContains(t, v.Tabs[0].Href, "tab=")
	assert.Empty(t, v.Widget.Hidden)
	assert.False(t, v.Static)
	assert.Equal(t, "/algorithms/linear-regression/widget.svg?intercept=1&slope=2", v.Widget.DrawingHref)
}

func TestNewDetailView_PathLinks(t *testing.T) {
	d, err := catalog.Default().Get(catalog.KMeansID)
	require.NoError(t, err)
	w, err := widget.Default(d.Widget)
	require.NoError(t, err)

	v := NewDetailView(d, TabDefinition, w, nil, PathLinks)
	assert.True(t, v.Static)
	assert.Equal(t, "/algorithms/k-means", v.Tabs[0].Href)
	assert.Equal(t, "/algorithms/k-means/definition/", v.Tabs[1].Href)
	assert.Equal(t, "/algorithms/k-means/use-cases/", v.Tabs[5].Href)
	for _, link := range v.Tabs {
		assert.NotContains(t, link.Href, "?")
	}
	assert.Equal(t, "/algorithms/k-means/widget.svg", v.Widget.DrawingHref)
}

func TestDetail_StaticVisualization(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	d, err := catalog.Default().Get(catalog.KMeansID)
	require.NoError(t, err)
	w, err := widget.Default(d.Widget)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Detail(&buf, NewDetailView(d, TabVisualization, w, []byte(fakeSVG), PathLinks)))
	out := buf.String()
	assert.Contains(t, out, fakeSVG)
	assert.Contains(t, out, `href="/algorithms/k-means/widget.svg"`)
	assert.NotContains(t, out, "<form")
	assert.Contains(t, out, "served live")
}

func TestIndex(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Index(&buf, catalog.Default().All()))
	out := buf.String()
	assert.Contains(t, out, `href="/algorithms/k-means"`)
	assert.Contains(t, out, `href="/algorithms/linear-regression"`)
	assert.Contains(t, out, "K-Means Clustering")
}

func TestNotFound(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf, "nonexistent-algo"))
	out := buf.String()
	assert.Contains(t, out, "Algorithm not found")
	assert.Contains(t, out, "nonexistent-algo")
	assert.Contains(t, out, `<a href="/algorithms">Back to algorithms</a>`)
	assert.NotContains(t, out, "<nav")
}

func TestNotFound_EscapesID(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf, "<script>alert(1)</script>"))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabOverview, ParseTab(""))
	assert.Equal(t, TabOverview, ParseTab("nope"))
	assert.Equal(t, TabUseCases, ParseTab("use-cases"))
	assert.Equal(t, "Use Cases", TabUseCases.Label())

	tab, ok := LookupTab("formulas")
	assert.True(t, ok)
	assert.Equal(t, TabFormulas, tab)
	_, ok = LookupTab("overview ")
	assert.False(t, ok)
}

func TestTabPath(t *testing.T) {
	assert.Equal(t, "/algorithms/k-means", TabPath("k-means", TabOverview))
	assert.Equal(t, "/algorithms/k-means/code/", TabPath("k-means", TabCode))
	assert.Equal(t, "/algorithms/k-means/widget.svg", DrawingPath("k-means"))
}

func TestAlgorithmPath(t *testing.T) {
	assert.Equal(t, "/algorithms/k-means", AlgorithmPath("k-means"))
	assert.Equal(t, "/algorithms/a%2Fb", AlgorithmPath("a/b"))
}
