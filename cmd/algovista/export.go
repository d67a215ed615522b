package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	algovista "github.com/iayr1/algovista-sub001"
	"github.com/iayr1/algovista-sub001/blobstore"
	"github.com/iayr1/algovista-sub001/blobstore/minio"
	"github.com/iayr1/algovista-sub001/blobstore/s3"
)

func runExport(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", stderr)
	var (
		lf          siteFlags
		target      string
		compression string
		concurrency int
		region      string
		endpoint    string
		prune       bool
	)
	fs.StringVar(&target, "target", "dir:public", "Destination: dir:PATH, mem:, s3://bucket/prefix or minio://bucket/prefix.")
	fs.StringVar(&compression, "compress", "none", "Precompressed siblings: none, gzip, zstd or lz4.")
	fs.IntVar(&concurrency, "concurrency", 4, "Objects rendered and uploaded at once.")
	fs.StringVar(&region, "region", "", "Bucket region (s3, minio).")
	fs.StringVar(&endpoint, "endpoint", "", "Custom endpoint: required for minio, optional for s3.")
	fs.BoolVar(&prune, "prune", true, "Delete objects under the target that this export did not write.")
	lf.register(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	enc, err := algovista.ParseCompression(compression)
	if err != nil {
		return err
	}
	opts, err := lf.siteOptions(stderr)
	if err != nil {
		return err
	}
	t, err := parseTarget(target)
	if err != nil {
		return err
	}
	store, err := t.open(ctx, region, endpoint)
	if err != nil {
		return err
	}

	site, err := algovista.New(opts...)
	if err != nil {
		return err
	}
	report, err := site.Publish(ctx, store,
		algovista.WithCompression(enc),
		algovista.WithConcurrency(concurrency),
		algovista.WithPrune(prune),
	)
	if err != nil {
		return err
	}

	for _, name := range report.Names {
		fmt.Fprintln(stdout, name)
	}
	fmt.Fprintf(stdout, "%d objects, %d bytes to %s in %s", report.Objects, report.Bytes, t, report.Duration.Round(time.Millisecond))
	if report.Pruned > 0 {
		fmt.Fprintf(stdout, ", %d stale objects deleted", report.Pruned)
	}
	fmt.Fprintln(stdout)
	return nil
}

type targetKind string

const (
	targetDir    targetKind = "dir"
	targetMemory targetKind = "mem"
	targetS3     targetKind = "s3"
	targetMinio  targetKind = "minio"
)

// target is a parsed -target value.
type target struct {
	kind   targetKind
	path   string // dir
	bucket string // s3, minio
	prefix string // s3, minio
}

var errInvalidTarget = errors.New("invalid target")

func parseTarget(s string) (target, error) {
	switch {
	case strings.HasPrefix(s, "dir:"):
		p := strings.TrimPrefix(s, "dir:")
		if p == "" {
			return target{}, fmt.Errorf("%w %q: empty directory", errInvalidTarget, s)
		}
		return target{kind: targetDir, path: p}, nil
	case s == "mem:" || s == "mem":
		return target{kind: targetMemory}, nil
	case strings.HasPrefix(s, "s3://"):
		return parseBucketTarget(targetS3, strings.TrimPrefix(s, "s3://"), s)
	case strings.HasPrefix(s, "minio://"):
		return parseBucketTarget(targetMinio, strings.TrimPrefix(s, "minio://"), s)
	default:
		return target{}, fmt.Errorf("%w %q: want dir:PATH, mem:, s3://bucket/prefix or minio://bucket/prefix", errInvalidTarget, s)
	}
}

func parseBucketTarget(kind targetKind, rest, raw string) (target, error) {
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return target{}, fmt.Errorf("%w %q: empty bucket", errInvalidTarget, raw)
	}
	return target{kind: kind, bucket: bucket, prefix: strings.Trim(prefix, "/")}, nil
}

func (t target) String() string {
	switch t.kind {
	case targetDir:
		return "dir:" + t.path
	case targetMemory:
		return "mem:"
	default:
		return string(t.kind) + "://" + blobstore.JoinKey(t.bucket, t.prefix)
	}
}

func (t target) open(ctx context.Context, region, endpoint string) (blobstore.Store, error) {
	switch t.kind {
	case targetDir:
		return blobstore.NewLocalStore(t.path), nil
	case targetMemory:
		return blobstore.NewMemoryStore(), nil
	case targetS3:
		opts := []s3.Option{s3.WithPrefix(t.prefix)}
		if region != "" {
			opts = append(opts, s3.WithRegion(region))
		}
		if endpoint != "" {
			opts = append(opts, s3.WithEndpoint(endpoint))
		}
		store, err := s3.New(ctx, t.bucket, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case targetMinio:
		if endpoint == "" {
			return nil, fmt.Errorf("%w %s: -endpoint is required", errInvalidTarget, t)
		}
		host, secure := splitScheme(endpoint)
		store, err := minio.New(minio.Config{
			Endpoint:  host,
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Secure:    secure,
			Region:    region,
		}, t.bucket, t.prefix)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx, region); err != nil {
			return nil, fmt.Errorf("minio: bucket %s: %w", t.bucket, err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s", errInvalidTarget, t.kind)
	}
}

// splitScheme strips an http:// or https:// scheme from endpoint and
// reports whether TLS should be used.
func splitScheme(endpoint string) (host string, secure bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	default:
		return endpoint, false
	}
}
