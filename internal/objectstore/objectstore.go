package objectstore

import "context"

// ObjectStore is the interface the core needs from the file-storage
// collaborator. The actual transfer happens elsewhere; the core only checks
// that a referenced key resolves before accepting it into state, and signs
// keys on the way out.
type ObjectStore interface {
	// Exists reports whether an uploaded object is present under key.
	Exists(ctx context.Context, key string) (bool, error)
	// Sign returns a short-lived download URL for key.
	Sign(ctx context.Context, key string) (string, error)
	// IsDuplicate reports whether key is already referenced by another
	// record under the given field name.
	IsDuplicate(ctx context.Context, key, field string) (bool, error)
}

// Unchecked is a permissive ObjectStore for deployments where uploads are
// verified at the edge. Every key resolves and nothing is a duplicate.
type Unchecked struct{}

func (Unchecked) Exists(_ context.Context, _ string) (bool, error) { return true, nil }

func (Unchecked) Sign(_ context.Context, key string) (string, error) { return key, nil }

func (Unchecked) IsDuplicate(_ context.Context, _, _ string) (bool, error) { return false, nil }

var _ ObjectStore = Unchecked{}
