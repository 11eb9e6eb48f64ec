package registry

import (
	"sort"
	"sync"

	"github.com/neuronlabs/dbhelper/errors"
	"github.com/neuronlabs/dbhelper/log"
)

// Container is the mapping between a name and the handle of type H. The zero value is an empty container
// ready to use, with no kind.
// Each method is safe for concurrent use, but a sequence of calls is not atomic.
type Container[H any] struct {
	kind    string
	handles map[string]H
	lock    sync.RWMutex
}

// New creates new container for the handles of given 'kind'. The kind is used in error details and logs only.
func New[H any](kind string) *Container[H] {
	return &Container[H]{
		kind:    kind,
		handles: map[string]H{},
	}
}

// Kind gets the container kind.
func (c *Container[H]) Kind() string {
	return c.kind
}

// Set stores the 'handle' under given 'name'. Any previous handle is overwritten.
func (c *Container[H]) Set(name string, handle H) {
	c.lock.Lock()
	if c.handles == nil {
		c.handles = map[string]H{}
	}
	c.handles[name] = handle
	c.lock.Unlock()
	log.Debug3f("%s: '%s' set", c.kind, name)
}

// Get gets the handle stored under given 'name'.
// If nothing was set for this name the function returns error of ErrNotFound class.
func (c *Container[H]) Get(name string) (H, error) {
	h, ok := c.Lookup(name)
	if !ok {
		return h, errors.WrapDetf(ErrNotFound, "%s: '%s' not found", c.kind, name)
	}
	return h, nil
}

// Lookup gets the handle stored under given 'name' and reports if it was found.
func (c *Container[H]) Lookup(name string) (H, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	h, ok := c.handles[name]
	return h, ok
}

// Has checks if any handle was set for given 'name'.
func (c *Container[H]) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names gets the sorted names of all stored handles.
func (c *Container[H]) Names() []string {
	c.lock.RLock()
	names := make([]string, 0, len(c.handles))
	for name := range c.handles {
		names = append(names, name)
	}
	c.lock.RUnlock()
	sort.Strings(names)
	return names
}

// Len gets the number of stored handles.
func (c *Container[H]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.handles)
}

// Clear removes all the stored handles.
func (c *Container[H]) Clear() {
	c.lock.Lock()
	c.handles = map[string]H{}
	c.lock.Unlock()
	log.Debug3f("%s: cleared", c.kind)
}
