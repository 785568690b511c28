// Package controller contains HTTP middlewares and helper handlers used by
// the API server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers plus OPTIONS preflight handling.
//   - WithLogger: request-scoped logger and request ID in the context, and a
//     structured access log after the handler returns.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller
