// Package server exposes an algovista.Site over HTTP.
//
// Routes:
//
//	GET /                               302 to /algorithms
//	GET /algorithms                     listing
//	GET /algorithms/{id}                detail view (404 with the not-found view)
//	GET /algorithms/{id}/widget.svg     widget drawing for the query state
//	GET /api/algorithms                 JSON array of descriptors
//	GET /api/algorithms/{id}            JSON descriptor
//	GET /healthz                        liveness
//	GET /metrics                        Prometheus exposition, when configured
//
// Middleware, outermost first: panic recovery, request logging, request
// metrics, rate limiting, gzip.
package server
