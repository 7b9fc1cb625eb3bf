// Package models holds the plain value types shared between the
// configuration store, the variable resolver, the path validator and the
// CLI: raw property entries, resolved paths and build metadata.
package models
