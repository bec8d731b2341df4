// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from this configuration: the
// listen address, the request body limit that bounds scan batches and icon
// uploads, and the API key checked by the auth middleware.
package server
