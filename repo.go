package todod

import "context"

// ItemRepo defines the store contract for todo items. Implementations must
// be safe for concurrent use; each method maps to a single atomic store
// call, and there are no multi-item transactions.
//
// All methods accept a context for cancellation and timeout control.
type ItemRepo interface {
	// List retrieves every item in the store. Ordering is store-defined
	// and not guaranteed stable.
	List(ctx context.Context) ([]Item, error)

	// Get retrieves a single item by id. Returns ErrNotFound if the id
	// does not exist.
	Get(ctx context.Context, id string) (Item, error)

	// Put stores a new item under its id.
	Put(ctx context.Context, item Item) error

	// SetCompleted performs a targeted write of the completed field for
	// the item matching id, leaving the title untouched. Returns
	// ErrNotFound if no item matches.
	SetCompleted(ctx context.Context, id string, completed bool) error

	// Delete removes the item matching id. Deleting a missing id is not
	// an error; delete is idempotent.
	Delete(ctx context.Context, id string) error
}
