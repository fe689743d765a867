// Package server builds the fiber application shared by the HTTP features.
//
// Config holds the listen port, the optional API key, the request body limit and the
// graceful shutdown bound. NewApp turns it into a *fiber.App that encodes JSON with
// goccy/go-json and renders every returned error as {"error": "..."} through ErrorHandler.
//
// # Usage
//
// The serve command calls NewApp, installs the middleware chain, and hands the app to the
// feature loader before listening on Config.Address.
package server
