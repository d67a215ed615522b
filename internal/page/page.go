package page

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"path"
	"sort"

	"github.com/iayr1/algovista-sub001/catalog"
	"github.com/iayr1/algovista-sub001/widget"
)

// ListingPath is the URL of the algorithm listing.
const ListingPath = "/algorithms"

// AlgorithmPath returns the URL of the detail view for id.
func AlgorithmPath(id string) string {
	return path.Join(ListingPath, url.PathEscape(id))
}

// TabPath returns the directory URL of tab on the detail view of id. The
// overview lives at AlgorithmPath.
func TabPath(id string, t Tab) string {
	if t == TabOverview {
		return AlgorithmPath(id)
	}
	return AlgorithmPath(id) + "/" + string(t) + "/"
}

// DrawingPath returns the URL of the bare widget drawing for id.
func DrawingPath(id string) string {
	return AlgorithmPath(id) + "/widget.svg"
}

// LinkMode selects how the detail view addresses its tabs.
type LinkMode uint8

const (
	// QueryLinks carry the tab and the widget state in the query string.
	QueryLinks LinkMode = iota
	// PathLinks give every tab its own directory (TabPath). Used for static
	// hosts, which ignore query strings; the widget form is not rendered.
	PathLinks
)

// Renderer executes the page templates. Templates are parsed once; a
// Renderer is safe for concurrent use.
type Renderer struct {
	detail   *template.Template
	index    *template.Template
	notFound *template.Template
}

// New parses the page templates.
func New() (*Renderer, error) {
	detail, err := parse("detail", tmplDetail)
	if err != nil {
		return nil, err
	}
	index, err := parse("index", tmplIndex)
	if err != nil {
		return nil, err
	}
	notFound, err := parse("not-found", tmplNotFound)
	if err != nil {
		return nil, err
	}
	return &Renderer{detail: detail, index: index, notFound: notFound}, nil
}

func parse(name, content string) (*template.Template, error) {
	t, err := template.New(name).Parse(tmplLayout)
	if err != nil {
		return nil, fmt.Errorf("page: parse layout: %w", err)
	}
	if _, err := t.Parse(content); err != nil {
		return nil, fmt.Errorf("page: parse %s: %w", name, err)
	}
	return t, nil
}

// TabLink is one entry of the tab navigation.
type TabLink struct {
	Tab    Tab
	Label  string
	Href   string
	Active bool
}

// Hidden is a hidden form field carrying widget state between requests.
type Hidden struct {
	Name  string
	Value string
}

// WidgetView is the visualization panel's data.
type WidgetView struct {
	Kind        widget.Kind
	SVG         template.HTML
	DrawingHref string
	Controls    []widget.Control
	Readouts    []widget.Readout
	Hidden      []Hidden
}

// DetailView is the data for one algorithm page.
type DetailView struct {
	Title       string
	Descriptor  catalog.Descriptor
	Active      Tab
	Tabs        []TabLink
	Widget      WidgetView
	SelfHref    string
	ListingHref string
	Static      bool
}

// NewDetailView assembles the detail view. svg is the widget drawing for
// w's current state; it is produced by this module and trusted as markup.
func NewDetailView(d catalog.Descriptor, active Tab, w widget.Widget, svg []byte, mode LinkMode) DetailView {
	self := AlgorithmPath(d.ID)
	state := w.Encode()

	tabs := make([]TabLink, len(Tabs))
	for i, t := range Tabs {
		href := TabPath(d.ID, t)
		if mode == QueryLinks {
			href = withQuery(self, state, t)
		}
		tabs[i] = TabLink{Tab: t, Label: t.Label(), Href: href, Active: t == active}
	}

	drawing := DrawingPath(d.ID)
	if mode == QueryLinks {
		if enc := state.Encode(); enc != "" {
			drawing += "?" + enc
		}
	}

	controls := w.Controls()
	covered := make(map[string]bool, len(controls))
	for _, c := range controls {
		covered[c.Name] = true
	}
	var hidden []Hidden
	for _, name := range sortedKeys(state) {
		if covered[name] {
			continue
		}
		hidden = append(hidden, Hidden{Name: name, Value: state.Get(name)})
	}

	return DetailView{
		Title:      d.Name,
		Descriptor: d,
		Active:     active,
		Tabs:       tabs,
		Widget: WidgetView{
			Kind:        w.Kind(),
			SVG:         template.HTML(svg), //nolint:gosec // generated by the chart renderer
			DrawingHref: drawing,
			Controls:    controls,
			Readouts:    w.Readouts(),
			Hidden:      hidden,
		},
		SelfHref:    self,
		ListingHref: ListingPath,
		Static:      mode == PathLinks,
	}
}

func withQuery(self string, state url.Values, t Tab) string {
	q := url.Values{}
	for k, v := range state {
		q[k] = v
	}
	if t != TabOverview {
		q.Set("tab", string(t))
	}
	if enc := q.Encode(); enc != "" {
		return self + "?" + enc
	}
	return self
}

// Detail renders the detail view.
func (r *Renderer) Detail(w io.Writer, v DetailView) error {
	return execute(r.detail, w, v)
}

// IndexItem is one card of the listing.
type IndexItem struct {
	catalog.Descriptor
	Href string
}

// IndexView is the data of the listing page.
type IndexView struct {
	Title string
	Items []IndexItem
}

// Index renders the listing of descs.
func (r *Renderer) Index(w io.Writer, descs []catalog.Descriptor) error {
	v := IndexView{Title: "All algorithms", Items: make([]IndexItem, len(descs))}
	for i, d := range descs {
		v.Items[i] = IndexItem{Descriptor: d, Href: AlgorithmPath(d.ID)}
	}
	return execute(r.index, w, v)
}

// NotFoundView is the data of the not-found page.
type NotFoundView struct {
	Title       string
	ID          string
	ListingHref string
}

// NotFound renders the not-found view for id.
func (r *Renderer) NotFound(w io.Writer, id string) error {
	return execute(r.notFound, w, NotFoundView{Title: "Not found", ID: id, ListingHref: ListingPath})
}

func execute(t *template.Template, w io.Writer, data any) error {
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("page: execute %s: %w", t.Name(), err)
	}
	return nil
}

func sortedKeys(q url.Values) []string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
