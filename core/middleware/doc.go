// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation. Disabled when no key is configured.
//   - rayid: tags every request with a ray id, stored in Locals and echoed
//     in the X-Ray-ID response header, so logger.WithRayID can correlate logs.
package middleware
