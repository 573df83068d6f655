// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithTimeout: Bounds the request context.
//   - WithRecover: Converts handler panics into 500 responses.
//   - WithMetrics: Records request count and duration on an OpenTelemetry meter.
//
// Provided helpers:
//   - Chain: Composes middlewares.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
