// Package http implements the HTTP transport layer of the xbanking API.
//
// It exposes route wiring, request handlers, and middleware used by the mini
// app. Cross-cutting concerns such as request tracing, access logging, panic
// recovery, CORS and response compression are handled in this package before
// requests are delegated to the service layer.
//
// Every error response is a JSON object of the form {"detail": "..."}.
package http
