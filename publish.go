package algovista

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iayr1/algovista-sub001/blobstore"
	"github.com/iayr1/algovista-sub001/internal/compress"
	"github.com/iayr1/algovista-sub001/internal/page"
)

// Compression selects the precompressed sibling written next to each
// exported object.
type Compression = compress.Encoding

const (
	CompressNone = compress.None
	CompressGzip = compress.Gzip
	CompressZstd = compress.Zstd
	CompressLZ4  = compress.LZ4
)

// ParseCompression parses "none", "gzip", "zstd" or "lz4".
func ParseCompression(s string) (Compression, error) {
	return compress.ParseEncoding(s)
}

// DefaultCacheControl is stored with every exported object.
const DefaultCacheControl = "public, max-age=300"

type publishOptions struct {
	compression  Compression
	concurrency  int
	cacheControl string
	prune        bool
}

// PublishOption configures Publish.
type PublishOption func(*publishOptions)

// WithCompression writes a compressed sibling of every object.
func WithCompression(c Compression) PublishOption {
	return func(o *publishOptions) { o.compression = c }
}

// WithConcurrency bounds the number of objects rendered and uploaded at once.
// Zero selects the default of 4.
func WithConcurrency(n int) PublishOption {
	return func(o *publishOptions) { o.concurrency = n }
}

// WithCacheControl overrides DefaultCacheControl.
func WithCacheControl(v string) PublishOption {
	return func(o *publishOptions) { o.cacheControl = v }
}

// WithPrune controls whether objects in store that the export did not
// write are deleted after a successful export. The default is true.
func WithPrune(prune bool) PublishOption {
	return func(o *publishOptions) { o.prune = prune }
}

// PublishReport summarizes a completed export.
type PublishReport struct {
	Objects    int   // objects written, including compressed siblings
	Compressed int   // compressed siblings among Objects
	Bytes      int64 // total bytes written
	Pruned     int   // stale objects deleted
	Duration   time.Duration
	Names      []string // sorted object names
}

type exportObject struct {
	name        string
	algorithm   string // empty for site-wide objects
	contentType string
	render      func(ctx context.Context) ([]byte, error)
}

// Publish renders the listing, the not-found view, every tab of every detail
// page and widget drawing in its default state, and the JSON documents, and
// writes them to store. Tab links on exported pages are directories
// (algorithms/{id}/{tab}/). Unless disabled with WithPrune, objects left in
// store by earlier exports are deleted afterwards. It stops at the first
// error or when ctx is cancelled.
func (s *Site) Publish(ctx context.Context, store blobstore.Store, optFns ...PublishOption) (PublishReport, error) {
	o := publishOptions{concurrency: 4, cacheControl: DefaultCacheControl, prune: true}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 0 {
		return PublishReport{}, ErrInvalidConcurrency
	}
	if o.concurrency == 0 {
		o.concurrency = 4
	}

	start := time.Now()
	var (
		mu     sync.Mutex
		report PublishReport
	)
	put := func(ctx context.Context, name string, data []byte, opts blobstore.PutOptions) error {
		if err := store.Put(ctx, name, data, opts); err != nil {
			return fmt.Errorf("algovista: publish %s: %w", name, err)
		}
		mu.Lock()
		report.Objects++
		report.Bytes += int64(len(data))
		report.Names = append(report.Names, name)
		if opts.ContentEncoding != "" {
			report.Compressed++
		}
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for _, obj := range s.exportObjects() {
		g.Go(func() error {
			data, err := obj.render(gctx)
			if err != nil {
				if obj.algorithm != "" {
					s.logger.WithAlgorithm(obj.algorithm).ErrorContext(gctx, "export object failed",
						"object", obj.name,
						"error", err,
					)
				}
				return err
			}
			opts := blobstore.PutOptions{ContentType: obj.contentType, CacheControl: o.cacheControl}
			if err := put(gctx, obj.name, data, opts); err != nil {
				return err
			}
			if o.compression == CompressNone {
				return nil
			}
			packed, err := compress.Compress(o.compression, data)
			if err != nil {
				return fmt.Errorf("algovista: compress %s: %w", obj.name, err)
			}
			opts.ContentEncoding = o.compression.ContentEncoding()
			return put(gctx, obj.name+o.compression.Suffix(), packed, opts)
		})
	}
	err := g.Wait()

	sort.Strings(report.Names)
	if err == nil && o.prune {
		report.Pruned, err = s.prune(ctx, store, report.Names, o.concurrency)
	}
	report.Duration = time.Since(start)
	s.metrics.RecordPublish(report.Objects, report.Bytes, report.Duration, err)
	s.logger.LogPublish(ctx, report.Objects, report.Bytes, report.Duration, err)
	return report, err
}

// prune deletes every object in store that is not in keep (sorted).
func (s *Site) prune(ctx context.Context, store blobstore.Store, keep []string, concurrency int) (int, error) {
	names, err := store.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("algovista: prune: list: %w", err)
	}

	var stale []string
	for _, name := range names {
		if i := sort.SearchStrings(keep, name); i < len(keep) && keep[i] == name {
			continue
		}
		stale = append(stale, name)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, name := range stale {
		g.Go(func() error {
			if err := store.Delete(gctx, name); err != nil {
				return fmt.Errorf("algovista: prune %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if len(stale) > 0 {
		s.logger.InfoContext(ctx, "pruned stale objects", "objects", len(stale))
	}
	return len(stale), nil
}

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeSVG  = "image/svg+xml"
	contentTypeJSON = "application/json"
)

// exportObjects lists every object of the static export.
func (s *Site) exportObjects() []exportObject {
	listing := func(ctx context.Context) ([]byte, error) {
		var buf bytes.Buffer
		err := s.RenderIndex(ctx, &buf)
		return buf.Bytes(), err
	}

	objs := []exportObject{
		{name: "index.html", contentType: contentTypeHTML, render: listing},
		{name: "algorithms/index.html", contentType: contentTypeHTML, render: listing},
		{name: "404.html", contentType: contentTypeHTML, render: func(ctx context.Context) ([]byte, error) {
			var buf bytes.Buffer
			err := s.RenderNotFound(ctx, &buf, "")
			return buf.Bytes(), err
		}},
		{name: "api/algorithms.json", contentType: contentTypeJSON, render: func(context.Context) ([]byte, error) {
			return s.CatalogJSON()
		}},
	}

	for _, id := range s.catalog.IDs() {
		dir := path.Join("algorithms", id)
		for _, tab := range page.Tabs {
			name := path.Join(dir, "index.html")
			if tab != page.TabOverview {
				name = path.Join(dir, string(tab), "index.html")
			}
			q := url.Values{"tab": {string(tab)}}
			objs = append(objs, exportObject{name: name, algorithm: id, contentType: contentTypeHTML, render: func(ctx context.Context) ([]byte, error) {
				var buf bytes.Buffer
				_, err := s.renderAlgorithm(ctx, &buf, id, q, page.PathLinks)
				return buf.Bytes(), err
			}})
		}
		objs = append(objs,
			exportObject{name: path.Join(dir, "widget.svg"), algorithm: id, contentType: contentTypeSVG, render: func(ctx context.Context) ([]byte, error) {
				var buf bytes.Buffer
				err := s.RenderWidget(ctx, &buf, id, nil)
				return buf.Bytes(), err
			}},
			exportObject{name: path.Join("api", "algorithms", id+".json"), algorithm: id, contentType: contentTypeJSON, render: func(context.Context) ([]byte, error) {
				return s.DescriptorJSON(id)
			}},
		)
	}
	return objs
}
