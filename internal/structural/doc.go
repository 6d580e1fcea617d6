// Package structural owns the composition-oriented pattern demonstrations.
//
// Ownership boundary:
// - wrapping an incompatible surface (adapter, decorator, proxy)
// - uniform treatment of part/whole trees (composite)
// - decoupling independently varying halves (bridge, flyweight, facade)
//
// Demos write to the caller's writer and hold no process state beyond the
// flyweight intern cache.
package structural
