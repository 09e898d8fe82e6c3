// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the page and asset handlers, and middleware used
// by the server. Cross-cutting concerns such as token authentication, request
// tracing, access logging, response compression, and metrics are handled in
// this package before requests are delegated to the service layer.
package http
