// Package cart provides session-scoped cart storage for the booking funnel.
// Carts are keyed by the browser's session id and expire with it; nothing
// here outlives a session.
package cart

import (
	"context"

	"detailwave.be/booking-api/pkg/models"
)

// Store holds one cart per session. Get on an unknown session returns a
// fresh empty cart, never an error: an expired cart and a new visitor look
// the same to the funnel.
type Store interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, c *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
