package repositories

import "context"

// PreferenceReader defines read operations on a client-scoped key-value preference store.
type PreferenceReader interface {
	// GetItem returns the value stored under key. found is false when the key was never written.
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
}

// PreferenceWriter defines write operations on a client-scoped key-value preference store.
type PreferenceWriter interface {
	// SetItem stores value under key, overwriting any previous value.
	SetItem(ctx context.Context, key, value string) error
}

// PreferenceStore combines all preference store operations.
type PreferenceStore interface {
	PreferenceReader
	PreferenceWriter
}
