package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// SettlementStore defines the privileged interface for settling a spin.
// It should only be exposed to the component responsible for settlement.
type SettlementStore interface {
	// SettleSpin applies a spin's bet debit and payout credit to the wallet
	// and appends the spin record, as one indivisible operation. It fails
	// with ErrInsufficientFunds, mutating nothing, when the balance cannot
	// cover the bet. Settlements for the same (user, currency) account are
	// mutually exclusive. Returns the new balance.
	SettleSpin(ctx context.Context, record *models.SpinRecord) (decimal.Decimal, error)
}
