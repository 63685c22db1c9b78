package cookies

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Jar is an in-memory Store, used by non-browser clients (and tests) that
// need to hold credentials for the lifetime of a single process.
type Jar struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewJar returns an empty in-memory Store.
func NewJar() *Jar {
	return &Jar{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewJarAt returns an empty in-memory Store whose expiry checks use the given
// clock instead of time.Now.
func NewJarAt(now func() time.Time) *Jar {
	j := NewJar()
	j.now = now
	return j
}

func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	e, ok := j.entries[name]
	if !ok {
		return "", false
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(j.now()) {
		delete(j.entries, name)
		return "", false
	}
	return e.value, true
}

func (j *Jar) Set(name string, value string, expiresAt time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[name] = entry{value: value, expiresAt: expiresAt}
}

func (j *Jar) Delete(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.entries, name)
}

var _ Store = (*Jar)(nil)
