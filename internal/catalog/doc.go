// Package catalog owns pattern registration concerns.
//
// Ownership boundary:
// - the Pattern contract demos implement
// - the name-keyed registry with stable listing order
// - the default registry wiring for the shipped patterns
//
// Catalog does not render output or execute demos on its own.
package catalog
