package interfaces

import "context"

// DocumentCreator persists a raw content store document. Both the remote
// content API and the local SQL mirror implement it.
type DocumentCreator interface {
	CreateDocument(ctx context.Context, doc map[string]any) (string, error)
}
