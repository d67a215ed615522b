package algovista

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/iayr1/algovista-sub001/catalog"
	"github.com/iayr1/algovista-sub001/codec"
	"github.com/iayr1/algovista-sub001/internal/cache"
	"github.com/iayr1/algovista-sub001/internal/page"
	"github.com/iayr1/algovista-sub001/widget"
)

// Site renders the algorithm pages, widget drawings and JSON documents for
// one catalog. It is safe for concurrent use.
type Site struct {
	catalog *catalog.Catalog
	pages   *page.Renderer
	codec   codec.Codec
	cache   *cache.LRU
	sem     *semaphore.Weighted
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Site. Without options it serves catalog.Default().
func New(optFns ...Option) (*Site, error) {
	o := applyOptions(optFns)

	pages, err := page.New()
	if err != nil {
		return nil, err
	}

	return &Site{
		catalog: o.catalog,
		pages:   pages,
		codec:   o.codec,
		cache:   cache.NewLRU(o.cacheBytes),
		sem:     semaphore.NewWeighted(int64(o.renderConcurrency)),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// Catalog returns the served catalog.
func (s *Site) Catalog() *catalog.Catalog { return s.catalog }

// Logger returns the configured logger.
func (s *Site) Logger() *Logger { return s.logger }

// Codec returns the codec used for JSON documents.
func (s *Site) Codec() codec.Codec { return s.codec }

// Metrics returns the configured metrics collector.
func (s *Site) Metrics() MetricsCollector { return s.metrics }

// CacheStats returns the widget drawing cache hit and miss counters.
func (s *Site) CacheStats() (hits, misses int64) { return s.cache.Stats() }

// Lookup returns the descriptor for id. Unknown ids satisfy
// errors.Is(err, ErrNotFound).
func (s *Site) Lookup(id string) (catalog.Descriptor, error) {
	d, err := s.catalog.Get(id)
	return d, translateError(err)
}

// Result describes a rendered detail request.
type Result struct {
	ID       string
	Tab      page.Tab
	NotFound bool
	Bytes    int
}

// RenderIndex writes the listing of every algorithm.
func (s *Site) RenderIndex(ctx context.Context, w io.Writer) error {
	_, err := s.render(ctx, w, ViewIndex, "", func(buf *bytes.Buffer) error {
		return s.pages.Index(buf, s.catalog.All())
	})
	return err
}

// RenderNotFound writes the not-found view for id.
func (s *Site) RenderNotFound(ctx context.Context, w io.Writer, id string) error {
	_, err := s.render(ctx, w, ViewNotFound, id, func(buf *bytes.Buffer) error {
		return s.pages.NotFound(buf, id)
	})
	return err
}

// RenderAlgorithm writes the detail view for id with the tab and widget
// state taken from q. An unknown id is not an error: the not-found view is
// written and Result.NotFound is set.
func (s *Site) RenderAlgorithm(ctx context.Context, w io.Writer, id string, q url.Values) (Result, error) {
	return s.renderAlgorithm(ctx, w, id, q, page.QueryLinks)
}

func (s *Site) renderAlgorithm(ctx context.Context, w io.Writer, id string, q url.Values, links page.LinkMode) (Result, error) {
	d, err := s.Lookup(id)
	if err != nil {
		s.logger.LogNotFound(ctx, id)
		s.metrics.RecordNotFound(id)
		n, rerr := s.render(ctx, w, ViewNotFound, id, func(buf *bytes.Buffer) error {
			return s.pages.NotFound(buf, id)
		})
		return Result{ID: id, NotFound: true, Bytes: n}, rerr
	}

	tab := page.ParseTab(q.Get("tab"))
	wd, err := widget.Decode(d.Widget, q)
	if err != nil {
		return Result{ID: id, Tab: tab}, translateError(err)
	}
	svg, err := s.widgetSVG(ctx, d.ID, wd)
	if err != nil {
		return Result{ID: id, Tab: tab}, err
	}

	view := page.NewDetailView(d, tab, wd, svg, links)
	n, err := s.render(ctx, w, ViewDetail, id, func(buf *bytes.Buffer) error {
		return s.pages.Detail(buf, view)
	})
	return Result{ID: id, Tab: tab, Bytes: n}, err
}

// RenderWidget writes only the SVG drawing for id in the state given by q.
func (s *Site) RenderWidget(ctx context.Context, w io.Writer, id string, q url.Values) error {
	d, err := s.Lookup(id)
	if err != nil {
		s.metrics.RecordNotFound(id)
		return err
	}
	wd, err := widget.Decode(d.Widget, q)
	if err != nil {
		return translateError(err)
	}
	svg, err := s.widgetSVG(ctx, d.ID, wd)
	if err != nil {
		return err
	}
	if _, err := w.Write(svg); err != nil {
		return &ErrRender{View: ViewWidget, ID: id, cause: err}
	}
	return nil
}

// widgetSVG returns the cached drawing for the widget state, rendering it
// under the concurrency semaphore on a miss.
func (s *Site) widgetSVG(ctx context.Context, id string, wd widget.Widget) ([]byte, error) {
	key := cache.Key{Algorithm: id, State: wd.Encode().Encode()}
	if svg, ok := s.cache.Get(key); ok {
		s.metrics.RecordCache(true)
		return svg, nil
	}
	s.metrics.RecordCache(false)

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	start := time.Now()
	var buf bytes.Buffer
	err := wd.Render(&buf)
	elapsed := time.Since(start)
	s.metrics.RecordRender(ViewWidget, elapsed, err)
	s.logger.WithWidget(wd.Kind()).LogRender(ctx, ViewWidget, id, buf.Len(), elapsed, err)
	if err != nil {
		return nil, &ErrRender{View: ViewWidget, ID: id, cause: err}
	}

	svg := buf.Bytes()
	s.cache.Set(key, svg)
	return svg, nil
}

// CatalogJSON encodes every descriptor, ordered by name.
func (s *Site) CatalogJSON() ([]byte, error) {
	b, err := s.codec.Marshal(s.catalog.All())
	if err != nil {
		return nil, &ErrRender{View: ViewAPI, cause: err}
	}
	return b, nil
}

// DescriptorJSON encodes the descriptor for id.
func (s *Site) DescriptorJSON(id string) ([]byte, error) {
	d, err := s.Lookup(id)
	if err != nil {
		s.metrics.RecordNotFound(id)
		return nil, err
	}
	b, err := s.codec.Marshal(d)
	if err != nil {
		return nil, &ErrRender{View: ViewAPI, ID: id, cause: err}
	}
	return b, nil
}

// render runs fn into a buffer. w receives nothing unless fn succeeds.
func (s *Site) render(ctx context.Context, w io.Writer, view, id string, fn func(*bytes.Buffer) error) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := time.Now()
	var buf bytes.Buffer
	err := fn(&buf)
	if err == nil {
		_, err = w.Write(buf.Bytes())
	}
	elapsed := time.Since(start)

	s.metrics.RecordRender(view, elapsed, err)
	s.logger.LogRender(ctx, view, id, buf.Len(), elapsed, err)
	if err != nil {
		return 0, &ErrRender{View: view, ID: id, cause: err}
	}
	return buf.Len(), nil
}
