package download

import "context"

// Repository persists downloads in the embedded per-node store.
//
// Put upserts by id and the write is durable before it returns. Get returns
// (nil, nil) for an unknown id. Delete of an unknown id is a no-op. All
// operations fail with a StorageUnavailable AppError once the underlying
// store could not be opened, and with StorageWriteError on a failed write;
// neither is retried automatically.
type Repository interface {
	Put(ctx context.Context, d *Download) error
	Get(ctx context.Context, id string) (*Download, error)
	GetAll(ctx context.Context) ([]*Download, error)
	Delete(ctx context.Context, id string) error
}
