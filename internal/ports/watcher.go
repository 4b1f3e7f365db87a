package ports

// Watcher monitors a single file for changes. It is used to follow a
// batch file as new requests are appended to it.
type Watcher interface {
	// Watch starts monitoring path. onChange is called after each debounced
	// write or create event. The callback may be invoked from any goroutine.
	// Returns an error if the file's directory cannot be watched.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
