package ports

// Watcher monitors a single file for changes and triggers a reload callback.
// The adapter (fsnotify) must debounce rapid events — editors often trigger
// multiple writes per save. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called after each (debounced)
	// change to the file. The callback may be invoked from any goroutine.
	Watch(path string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
