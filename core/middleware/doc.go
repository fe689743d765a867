// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or bearer token) protecting every route
//     when server.api_key is set.
//   - rayid: assigns every request a RayID (uuid), stores it in the fiber locals read by
//     logger.WithRayID and echoes it in the X-Ray-ID response header.
//
// RayID is registered first so that every later log line can be traced.
package middleware
