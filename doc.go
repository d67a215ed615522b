// Package algovista serves an educational catalog of machine-learning
// algorithms: one page per algorithm with tabbed text panels and a small
// slider-driven diagram.
//
// The content is static. The diagrams plot fixed sample points; slider state
// only changes which line or how many centroids are drawn. No regression is
// fitted and no clustering iteration runs.
//
// # Quick Start
//
//	site, _ := algovista.New(algovista.WithLogger(algovista.NewTextLogger(slog.LevelInfo)))
//	srv, _ := server.New(site, server.Config{Addr: ":8080"})
//	_ = srv.Run(ctx)
//
// # Rendering
//
//	res, _ := site.RenderAlgorithm(ctx, w, "linear-regression", url.Values{
//	    "tab":   {"visualization"},
//	    "slope": {"2"},
//	})
//	if res.NotFound {
//	    // the not-found view was written
//	}
//
// Widget drawings are cached by (algorithm, canonical state) in a byte-bounded
// LRU; see WithCacheBytes.
//
// # Static Export
//
// Publish writes every page in its default state to any blobstore.Store:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("site/"))
//	report, _ := site.Publish(ctx, store, algovista.WithCompression(algovista.CompressGzip))
//
// Every tab is exported as its own page (algorithms/{id}/{tab}/index.html)
// and exported tab links point at those directories. The diagram is shown
// in its default state without the slider form, since a static host
// ignores query strings. Objects left over from earlier exports are
// deleted unless WithPrune(false) is given.
package algovista
