package storage

import (
	"context"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// SpinReader defines the interface for reading spin history.
type SpinReader interface {
	// ListSpins retrieves a user's most recent spin records, newest first.
	ListSpins(ctx context.Context, userID string, limit int32) ([]models.SpinRecord, error)
}
