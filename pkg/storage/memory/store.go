// Package memory implements the storage interfaces with in-process state.
// It backs demo deployments and tests; durable deployments use the dynamodb
// package instead.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
)

type accountKey struct {
	userID   string
	currency models.Currency
}

// account serializes all settlements against one (user, currency) wallet.
type account struct {
	mu     sync.Mutex
	wallet models.Wallet
}

// Store is an in-memory Storage implementation. Wallets are created lazily
// on first reference with the configured seed balance for their currency.
type Store struct {
	mu      sync.Mutex
	wallets map[accountKey]*account

	spinsMu sync.RWMutex
	spins   []models.SpinRecord

	seeds map[models.Currency]decimal.Decimal
}

// DefaultSeeds returns the demo starting balances for lazily created wallets.
func DefaultSeeds() map[models.Currency]decimal.Decimal {
	return map[models.Currency]decimal.Decimal{
		models.CurrencyGold:   decimal.NewFromInt(50000),
		models.CurrencySweeps: decimal.NewFromInt(25),
	}
}

// New creates an empty store. A nil seeds map means new wallets start at zero.
func New(seeds map[models.Currency]decimal.Decimal) *Store {
	return &Store{
		wallets: make(map[accountKey]*account),
		seeds:   seeds,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// acct returns the account for the key, creating it with the seed balance
// on first reference.
func (s *Store) acct(userID string, currency models.Currency) *account {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := accountKey{userID: userID, currency: currency}
	a, ok := s.wallets[k]
	if !ok {
		a = &account{wallet: models.Wallet{
			UserID:    userID,
			Currency:  currency,
			Balance:   s.seeds[currency],
			Version:   1,
			CreatedAt: time.Now().UTC(),
		}}
		s.wallets[k] = a
	}
	return a
}

// GetWallet retrieves one (user, currency) account.
func (s *Store) GetWallet(ctx context.Context, userID string, currency models.Currency) (*models.Wallet, error) {
	a := s.acct(userID, currency)
	a.mu.Lock()
	defer a.mu.Unlock()

	w := a.wallet
	return &w, nil
}

// ListWallets retrieves all of a user's accounts, one per supported currency.
func (s *Store) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	wallets := make([]models.Wallet, 0, 2)
	for _, c := range []models.Currency{models.CurrencyGold, models.CurrencySweeps} {
		w, err := s.GetWallet(ctx, userID, c)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, *w)
	}
	return wallets, nil
}

// SettleSpin applies the spin's debit and credit to the wallet and appends
// the record, all under the account's lock. A bet the balance cannot cover
// fails with ErrInsufficientFunds and mutates nothing.
func (s *Store) SettleSpin(ctx context.Context, record *models.SpinRecord) (decimal.Decimal, error) {
	a := s.acct(record.UserID, record.Currency)
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.wallet.Balance.LessThan(record.Bet) {
		return decimal.Zero, fmt.Errorf("settling spin %s: %w", record.ID, storage.ErrInsufficientFunds)
	}

	a.wallet.Balance = a.wallet.Balance.Sub(record.Bet).Add(record.Payout)
	a.wallet.Version++

	s.spinsMu.Lock()
	s.spins = append(s.spins, *record)
	s.spinsMu.Unlock()

	return a.wallet.Balance, nil
}

// ListSpins retrieves a user's most recent spin records, newest first.
func (s *Store) ListSpins(ctx context.Context, userID string, limit int32) ([]models.SpinRecord, error) {
	s.spinsMu.RLock()
	defer s.spinsMu.RUnlock()

	var out []models.SpinRecord
	for i := len(s.spins) - 1; i >= 0 && int32(len(out)) < limit; i-- {
		if s.spins[i].UserID == userID {
			out = append(out, s.spins[i])
		}
	}
	return out, nil
}
