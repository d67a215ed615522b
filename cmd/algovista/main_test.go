package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in   string
		want target
	}{
		{"dir:public", target{kind: targetDir, path: "public"}},
		{"mem:", target{kind: targetMemory}},
		{"s3://site", target{kind: targetS3, bucket: "site"}},
		{"s3://site/v1/", target{kind: targetS3, bucket: "site", prefix: "v1"}},
		{"minio://site/a/b", target{kind: targetMinio, bucket: "site", prefix: "a/b"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTarget(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "dir:", "s3://", "ftp://x", "public"} {
		_, err := parseTarget(bad)
		assert.ErrorIs(t, err, errInvalidTarget, bad)
	}
}

func TestTargetString(t *testing.T) {
	tgt, err := parseTarget("s3://site/v1")
	require.NoError(t, err)
	assert.Equal(t, "s3://site/v1", tgt.String())

	tgt, err = parseTarget("minio://site")
	require.NoError(t, err)
	assert.Equal(t, "minio://site/", tgt.String())
}

func TestSplitScheme(t *testing.T) {
	host, secure := splitScheme("https://play.min.io")
	assert.Equal(t, "play.min.io", host)
	assert.True(t, secure)

	host, secure = splitScheme("http://localhost:9000")
	assert.Equal(t, "localhost:9000", host)
	assert.False(t, secure)

	host, secure = splitScheme("localhost:9000")
	assert.Equal(t, "localhost:9000", host)
	assert.False(t, secure)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "ALGOVISTA_CACHE_BYTES", envName("cache-bytes"))
	assert.Equal(t, "ALGOVISTA_ADDR", envName("addr"))
}

func TestApplyEnv(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "")
	rate := fs.Float64("rate", 0, "")
	require.NoError(t, fs.Parse([]string{"-addr", ":9000"}))

	env := map[string]string{
		"ALGOVISTA_ADDR": ":1234",
		"ALGOVISTA_RATE": "2.5",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	require.NoError(t, applyEnv(fs, lookup))
	assert.Equal(t, ":9000", *addr, "command line wins")
	assert.Equal(t, 2.5, *rate)

	env["ALGOVISTA_RATE"] = "fast"
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Float64("rate", 0, "")
	require.NoError(t, fs.Parse(nil))
	err := applyEnv(fs, lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ALGOVISTA_RATE")
}

func TestRun_List(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"list"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "k-means")
	assert.Contains(t, out, "linear-regression")
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("k-means")), bytes.Index(stdout.Bytes(), []byte("linear-regression")))
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"frobnicate"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
	assert.Equal(t, 2, run(context.Background(), []string{"list", "extra"}, &stdout, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"serve", "-nope"}, &stdout, &stderr))

	stdout.Reset()
	assert.Equal(t, 0, run(context.Background(), []string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "commands:")
}

func TestRun_BadEnv(t *testing.T) {
	t.Setenv("ALGOVISTA_CACHE_BYTES", "lots")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"serve"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "ALGOVISTA_CACHE_BYTES")
}

func TestRun_ExportDir(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"export",
		"-target", "dir:" + dir,
		"-compress", "gzip",
		"-log-level", "error",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	for _, name := range []string{
		"index.html",
		"index.html.gz",
		"404.html",
		"algorithms/index.html",
		"algorithms/k-means/index.html",
		"algorithms/k-means/definition/index.html",
		"algorithms/linear-regression/widget.svg",
		"api/algorithms.json",
		"api/algorithms/k-means.json",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
	assert.Contains(t, stdout.String(), "40 objects")
	assert.Contains(t, stdout.String(), "algorithms/k-means/widget.svg.gz")
}

func TestRun_ExportErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"export", "-target", "mem:", "-compress", "brotli"}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"export", "-target", "ftp://x"}, &stdout, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"export", "-target", "minio://site"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-endpoint is required")
	assert.Equal(t, 1, run(context.Background(), []string{"export", "-target", "mem:", "-concurrency", "-1"}, &stdout, &stderr))
}

func TestRun_ExportMemory(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"export", "-target", "mem:", "-log-level", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "20 objects")
	assert.Contains(t, stdout.String(), "to mem:")
}

func TestRun_ExportPrunes(t *testing.T) {
	dir := t.TempDir()
	export := func(args ...string) string {
		t.Helper()
		var stdout, stderr bytes.Buffer
		args = append([]string{"export", "-target", "dir:" + dir, "-log-level", "error"}, args...)
		require.Equal(t, 0, run(context.Background(), args, &stdout, &stderr), stderr.String())
		return stdout.String()
	}

	export("-compress", "gzip")
	out := export("-compress", "none", "-prune=false")
	assert.NotContains(t, out, "stale")
	_, err := os.Stat(filepath.Join(dir, "index.html.gz"))
	require.NoError(t, err)

	out = export("-compress", "none")
	assert.Contains(t, out, "20 stale objects deleted")
	_, err = os.Stat(filepath.Join(dir, "index.html.gz"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Codec(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"export", "-target", "mem:", "-codec", "json", "-log-level", "error"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())

	code = run(context.Background(), []string{"export", "-target", "mem:", "-codec", "msgpack"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `unknown codec "msgpack"`)
}
