// Package storage provides the key-value persistence port the stores write
// their serialized state through, plus the sqlite-backed implementation used
// on device and an in-memory fake for tests.
package storage

// KV is the persistence port. Get reports ok=false when the key is absent.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
