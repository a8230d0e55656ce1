// Package registry implements the core of the generator: the in-memory
// model of the Khronos XML registry, API-variant resolution, the
// version-ordered feature/extension resolver, and the dependency-ordered
// emission driver that feeds an Emitter.
package registry
