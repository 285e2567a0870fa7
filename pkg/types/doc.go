// Package types defines the catalog entity types, the Store interface,
// configuration, notification signals, and standard error values for the
// exchange hub.
package types
