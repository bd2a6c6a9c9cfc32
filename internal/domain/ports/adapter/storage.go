package adapter

import "context"

// ObjectStore is durable blob storage addressed by URI or key.
type ObjectStore interface {
	// Upload stores the local file under key and returns the remote URI.
	Upload(ctx context.Context, localPath, key string) (string, error)
	// Download fetches the blob at remoteURI into transient local storage
	// and returns the local path.
	Download(ctx context.Context, remoteURI string) (string, error)
}
