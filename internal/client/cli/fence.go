package cli

import "sync"

// fence is a generation counter guarding view state against stale
// responses. Navigating (or a forced logout) bumps the generation; a fetch
// result is applied only if the generation it started under is still
// current. There is no way to abort an in-flight request, only to make its
// result detectably stale.
type fence struct {
	mu  sync.Mutex
	gen int
}

// Begin starts a new generation and returns it.
func (f *fence) Begin() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	return f.gen
}

// Invalidate voids every generation handed out so far.
func (f *fence) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
}

// Current reports whether gen is still the live generation.
func (f *fence) Current(gen int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gen == gen
}
