package kvstore

// Store is a minimal named-string store, the shape the application needs
// for persisting serialized state across restarts.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set writes the value for key, overwriting any previous value.
	Set(key, value string) error
}
