package hypergraph

import "sync"

// Dict maps feature names to dense integer IDs and back. IDs are assigned
// in insertion order starting at 0, so a weight vector for a Dict is a plain
// []float64 of length Len(). Safe for concurrent use.
type Dict struct {
	mu    sync.RWMutex
	ids   map[string]int
	names []string
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{ids: make(map[string]int)}
}

// Add returns the ID of name, assigning the next free ID if it is new.
func (d *Dict) Add(name string) int {
	d.mu.RLock()
	id, ok := d.ids[name]
	d.mu.RUnlock()
	if ok {
		return id
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if id, ok = d.ids[name]; ok {
		return id
	}
	id = len(d.names)
	d.ids[name] = id
	d.names = append(d.names, name)

	return id
}

// ID returns the ID of name, false if it was never added.
func (d *Dict) ID(name string) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.ids[name]

	return id, ok
}

// Name returns the name of id, false if unknown.
func (d *Dict) Name(id int) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if id < 0 || id >= len(d.names) {
		return "", false
	}

	return d.names[id], true
}

// Len returns the number of names.
func (d *Dict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.names)
}

// Names returns a copy of all names, indexed by ID.
func (d *Dict) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]string(nil), d.names...)
}
