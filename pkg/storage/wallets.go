package storage

import (
	"context"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// WalletStore defines the read interface for wallet accounts. Reads are
// advisory: the authoritative balance check happens inside SettleSpin.
type WalletStore interface {
	// GetWallet retrieves one (user, currency) account.
	GetWallet(ctx context.Context, userID string, currency models.Currency) (*models.Wallet, error)

	// ListWallets retrieves all of a user's accounts, one per currency.
	ListWallets(ctx context.Context, userID string) ([]models.Wallet, error)
}
