package timeline

import (
	"fmt"
	"hash/fnv"
	"sync"
)

// Cache memoizes the last compiled stack keyed on its parameters.
// Compilation runs only when the configuration actually changes.
type Cache struct {
	mu     sync.Mutex
	key    string
	stack  *Stack
	builds int
}

// Get returns the cached stack for p, compiling it when p differs from the last call
func (c *Cache) Get(p Params) (*Stack, error) {
	key := p.key()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stack != nil && c.key == key {
		return c.stack, nil
	}

	s, err := New(p)
	if err != nil {
		return nil, err
	}
	c.key = key
	c.stack = s
	c.builds++
	return s, nil
}

// Builds returns how many compilations the cache has performed
func (c *Cache) Builds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.builds
}

// key renders every field of p, palettes included; equal keys mean equal parameters
func (p Params) key() string {
	return fmt.Sprintf("%#v", p)
}

// Fingerprint is a short hash of the parameters for display; Cache compares full keys
func (p Params) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.key()))
	return h.Sum64()
}
