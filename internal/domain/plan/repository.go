package plan

import "context"

// Repository is the persistence contract for plans. The in-memory store
// implements it today; a database-backed implementation can replace it
// without touching callers.
//
// GetByID returns (nil, nil) when the id is unknown; mutating methods
// return a NotFound AppError instead.
type Repository interface {
	List(ctx context.Context) ([]*Plan, error)
	ListActive(ctx context.Context) ([]*Plan, error)
	GetByID(ctx context.Context, id string) (*Plan, error)
	Create(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
	ToggleStatus(ctx context.Context, id string, active bool) (*Plan, error)
	Delete(ctx context.Context, id string) error
}

// Watcher fans out change notifications. Callbacks carry no payload;
// observers re-read the collection to learn the new state.
type Watcher interface {
	// Subscribe registers fn and schedules one initial asynchronous
	// invocation. The returned func removes exactly this registration and
	// is safe to call more than once.
	Subscribe(fn func()) (unsubscribe func())
}
