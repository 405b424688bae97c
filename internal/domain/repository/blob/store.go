package blob

// Store is the full avatar blob store contract; both the filesystem and the
// MinIO backends satisfy it.
type Store interface {
	Writer
	Reader
	Remover
}
