package storage

// Backend defines a generic key-value storage interface with bucket support.
// All operations work with raw []byte; callers choose their serialization
// format (see JSONStore for the JSON convenience wrapper).
type Backend interface {
	// Bucket operations
	CreateBucket(name []byte) error
	DeleteBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	// KV operations within buckets
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// Iteration
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	// Lifecycle
	Close() error
}

// PutString is a convenience wrapper that converts string keys to []byte
func PutString(b Backend, bucket []byte, key string, value []byte) error {
	return b.Put(bucket, []byte(key), value)
}

// GetString is a convenience wrapper that converts string keys to []byte
func GetString(b Backend, bucket []byte, key string) ([]byte, error) {
	return b.Get(bucket, []byte(key))
}

// DeleteString is a convenience wrapper that converts string keys to []byte
func DeleteString(b Backend, bucket []byte, key string) error {
	return b.Delete(bucket, []byte(key))
}
