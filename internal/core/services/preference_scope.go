package services

import (
	"context"

	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
)

// scopedStore prefixes every key with a client namespace so that clients sharing
// one backend never see each other's preferences.
type scopedStore struct {
	inner     portsrepo.PreferenceStore
	namespace string
}

func newScopedStore(inner portsrepo.PreferenceStore, namespace string) portsrepo.PreferenceStore {
	if namespace == "" {
		return inner
	}
	return &scopedStore{inner: inner, namespace: namespace}
}

func (s *scopedStore) key(k string) string {
	return s.namespace + ":" + k
}

func (s *scopedStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	return s.inner.GetItem(ctx, s.key(key))
}

func (s *scopedStore) SetItem(ctx context.Context, key, value string) error {
	return s.inner.SetItem(ctx, s.key(key), value)
}
