// Package http implements the HTTP handlers for the dashboard API. Handlers
// stay thin: they parse and validate the request, delegate to the dashboard
// service, and render JSON. All errors render as the shared APIError body.
//
// The computed model is read-only from this layer. POST /api/reload is the
// only mutating route and simply re-runs the whole pipeline over re-fetched
// inputs.
package http
