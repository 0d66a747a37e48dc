// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"strings"
)

// Namespaces used by the storefront records.
const (
	NamespaceSession       = "auth_session"
	NamespaceUsers         = "users"
	NamespaceCart          = "cart"
	NamespaceLocalProducts = "local_products"
)

// Key addresses a single record in a KeyValueStore.
type Key struct {
	Namespace string
	ID        string
}

// NewKey builds a key. IDs derived from emails are expected to be normalized by the caller.
func NewKey(namespace, id string) Key {
	return Key{Namespace: namespace, ID: id}
}

// String renders the key as namespace:id.
func (k Key) String() string {
	return k.Join(":")
}

// Join renders the key with a backend specific separator.
func (k Key) Join(sep string) string {
	return strings.Join([]string{k.Namespace, k.ID}, sep)
}

// KeyValueStore is the storage abstraction behind every persisted storefront record.
// Values are opaque bytes; callers own serialization.
type KeyValueStore interface {
	// Get returns the stored value. found is false when nothing is stored under key.
	Get(ctx context.Context, key Key) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key Key, value []byte) error

	// SetIfAbsent stores value only when nothing is stored under key yet.
	// created is false when the key already held a value; the stored value is left untouched.
	SetIfAbsent(ctx context.Context, key Key, value []byte) (created bool, err error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error
}
