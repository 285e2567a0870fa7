// Package catalog implements the exchange hub's core: filtering, relationship
// resolution, draft validation, the selection state machine, and the Catalog
// facade that presentation layers talk to.
package catalog

// Version is the catalog core version.
const Version = "0.1.0"
