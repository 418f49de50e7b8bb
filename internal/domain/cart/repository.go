package cart

import (
	"context"
)

// Repository defines the interface for cart persistence.
// Every operation is scoped to a session so customers never touch each other's lines.
type Repository interface {
	// FindLines lists the session's lines with names and prices, newest first
	FindLines(ctx context.Context, sessionID string) ([]Line, error)

	// FindMatching finds an existing line for the same product or service
	FindMatching(ctx context.Context, sessionID string, productID, serviceID *int64, itemType ItemType) (*Item, error)

	// Create inserts a new line
	Create(ctx context.Context, item *Item) error

	// AddQuantity increments an existing line
	AddQuantity(ctx context.Context, id int64, delta int) error

	// SetQuantity overwrites a line's quantity; ErrNotFound if the line is not in the session
	SetQuantity(ctx context.Context, sessionID string, id int64, quantity int) error

	// Delete removes a line; ErrNotFound if the line is not in the session
	Delete(ctx context.Context, sessionID string, id int64) error

	// Clear removes every line in the session
	Clear(ctx context.Context, sessionID string) error
}
