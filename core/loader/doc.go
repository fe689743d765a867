// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface, which names it, reports whether it is
// enabled and registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features, in registration order, via LoadAll()
//
// The serve command registers the 'lookup' and 'collection' features.
package loader
