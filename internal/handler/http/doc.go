// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as identity resolution, admin gating,
// request tracing, access logging, metrics and rate limiting are handled in
// this package before requests are delegated to the service layer. Every
// response, errors and unmatched routes included, is written as the
// {status, message, data} envelope.
package http
