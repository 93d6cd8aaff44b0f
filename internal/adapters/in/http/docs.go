// Package http is the inbound HTTP adapter. It serves the routes declared in
// internal/generated/servers with echo, validates requests against the
// embedded OpenAPI document, and maps the error taxonomy to status codes:
//
//	errs.ErrObjectNotFound                       -> 404
//	errs.ErrBadInput, ErrValueIs* (validation)   -> 400
//	anything else, incl. errs.ErrProviderFailure -> 500
//
// Error bodies are servers.Error{Code, Message}.
package http
