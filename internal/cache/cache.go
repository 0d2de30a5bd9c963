// Package cache provides a small key-value store used to share the daily
// indicator value across processes.
package cache

// Repository is a minimal key-value cache contract.
type Repository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
