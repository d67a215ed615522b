package algovista_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http/httptest"
	"os"

	algovista "github.com/iayr1/algovista-sub001"
	"github.com/iayr1/algovista-sub001/blobstore"
	"github.com/iayr1/algovista-sub001/server"
)

// Example_server builds the HTTP handler for the built-in catalog.
func Example_server() {
	site, err := algovista.New(algovista.WithLogger(algovista.NewTextLogger(slog.LevelError)))
	if err != nil {
		log.Fatal(err)
	}
	srv, err := server.New(site, server.Config{Addr: ":8080"})
	if err != nil {
		log.Fatal(err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	fmt.Println(rec.Code, rec.Body.String())
	// Output: 200 ok
}

// Example_publish exports the site into a directory.
func Example_publish() {
	dir, err := os.MkdirTemp("", "algovista-example-")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	site, err := algovista.New(algovista.WithLogger(algovista.NoopLogger()))
	if err != nil {
		log.Fatal(err)
	}
	report, err := site.Publish(context.Background(), blobstore.NewLocalStore(dir))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.Objects, report.Pruned)
	// Output: 20 0
}
