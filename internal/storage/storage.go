// Package storage provides the durable key-value slots the application
// persists into: one slot for the task collection, one for the theme.
package storage

// KV is a durable key-value slot. Get reports whether the key existed so a
// missing slot can be told apart from a read failure.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Close() error
}
