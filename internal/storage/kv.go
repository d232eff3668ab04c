package storage

// KV is the durable key-value persistence port. Absence is reported via the
// boolean, not an error, so callers can fall back to defaults without
// inspecting error values.
type KV interface {
	// Get returns the stored value for key, and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
}
