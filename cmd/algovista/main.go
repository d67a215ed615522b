// Command algovista serves the algorithm catalog over HTTP, exports it as a
// static site, or lists it.
//
// Usage:
//
//	algovista serve  [-addr :8080] [-rate 50] [-gzip] [-metrics] ...
//	algovista export -target dir:./public [-compress gzip] ...
//	algovista list
//
// Every flag can also be set through ALGOVISTA_<FLAG>, with dashes turned
// into underscores (ALGOVISTA_CACHE_BYTES). Command-line flags win.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	algovista "github.com/iayr1/algovista-sub001"
	"github.com/iayr1/algovista-sub001/codec"
	"github.com/iayr1/algovista-sub001/metric"
	"github.com/iayr1/algovista-sub001/server"
)

const usage = `usage: algovista <command> [flags]

commands:
  serve    serve the site over HTTP
  export   render the site into a directory or object store
  list     print the catalog
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "serve":
		err = runServe(ctx, args[1:], stderr)
	case "export":
		err = runExport(ctx, args[1:], stdout, stderr)
	case "list":
		err = runList(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "algovista: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "algovista: %v\n", err)
		return 1
	}
}

var errUsage = errors.New("usage error")

// siteFlags are shared by every command that builds a Site.
type siteFlags struct {
	level  string
	format string
	codec  string
}

func (l *siteFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&l.level, "log-level", "info", "Minimum log level: debug, info, warn, error.")
	fs.StringVar(&l.format, "log-format", "text", "Log format: text or json.")
	fs.StringVar(&l.codec, "codec", codec.Default.Name(), "JSON codec for API documents: go-json or json.")
}

// siteOptions returns the logger and codec options selected by the flags.
func (l *siteFlags) siteOptions(w io.Writer) ([]algovista.Option, error) {
	logger, err := l.logger(w)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(l.codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", l.codec)
	}
	return []algovista.Option{algovista.WithLogger(logger), algovista.WithCodec(c)}, nil
}

func (l *siteFlags) logger(w io.Writer) (*algovista.Logger, error) {
	level, err := algovista.ParseLevel(l.level)
	if err != nil {
		return nil, err
	}
	return algovista.NewFormatLogger(w, l.format, level), nil
}

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := newFlagSet("serve", stderr)
	var (
		lf         siteFlags
		cfg        server.Config
		cacheBytes int64
		metrics    bool
	)
	fs.StringVar(&cfg.Addr, "addr", ":8080", "Listen address.")
	fs.Float64Var(&cfg.RateLimit, "rate", 0, "Requests per second across all clients (0 disables).")
	fs.IntVar(&cfg.Burst, "burst", 0, "Rate limiter burst (default: rate).")
	fs.BoolVar(&cfg.Gzip, "gzip", true, "Compress responses.")
	fs.Int64Var(&cacheBytes, "cache-bytes", algovista.DefaultCacheBytes, "Widget drawing cache size in bytes (0 disables).")
	fs.BoolVar(&metrics, "metrics", false, "Serve Prometheus metrics on /metrics.")
	lf.register(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	opts, err := lf.siteOptions(stderr)
	if err != nil {
		return err
	}
	opts = append(opts, algovista.WithCacheBytes(cacheBytes))
	if metrics {
		cfg.Metrics = metric.NewPrometheusCollector()
		opts = append(opts, algovista.WithMetricsCollector(cfg.Metrics))
	}

	site, err := algovista.New(opts...)
	if err != nil {
		return err
	}
	srv, err := server.New(site, cfg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func runList(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("list", stderr)
	if err := parse(fs, args); err != nil {
		return err
	}

	site, err := algovista.New(algovista.WithLogger(algovista.NoopLogger()))
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, d := range site.Catalog().All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Name, d.Difficulty)
	}
	return tw.Flush()
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parse parses args, then fills unset flags from the environment.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		return errUsage
	}
	if err := applyEnv(fs, os.LookupEnv); err != nil {
		fmt.Fprintln(fs.Output(), err)
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}
