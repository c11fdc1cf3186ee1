// Package server is the web front end for the ZOF solver engine. It owns the
// request/response boundary only: parsing and validating form or JSON input,
// invoking the engine, and rendering the Result as an HTML iteration table, a
// JSON document, or a PNG convergence plot. No solve state lives here; every
// request is independent.
//
// Routes:
//
//	GET  /               HTML form
//	POST /               form submission, re-rendered with the trace table
//	POST /api/v1/solve   JSON solve API
//	GET  /api/v1/methods method metadata for clients
//	GET  /plot           PNG plot of f(x) and the per-iteration estimates
package server
