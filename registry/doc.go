// Package registry contains the named handle container used to store engines, bases and sessions.
// A Container maps a string name to an opaque handle. The name "default" has no special meaning
// for the container itself - it is treated specially only by the packages that use it.
package registry
