package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// amount stores a decimal as a native DynamoDB number. DynamoDB numbers are
// exact decimals, so balances survive round-trips without float rounding.
type amount struct {
	decimal.Decimal
}

func (a amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.Decimal.String()}, nil
}

func (a *amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("expected number attribute, got %T", av)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("failed to parse number attribute: %w", err)
	}
	a.Decimal = d
	return nil
}

// walletItem is the wallets table representation of a (user, currency) account.
type walletItem struct {
	UserID    string    `dynamodbav:"user_id"`
	Currency  string    `dynamodbav:"currency"`
	Balance   amount    `dynamodbav:"balance"`
	Version   int64     `dynamodbav:"version"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

func (w walletItem) toModel() models.Wallet {
	return models.Wallet{
		UserID:    w.UserID,
		Currency:  models.Currency(w.Currency),
		Balance:   w.Balance.Decimal,
		Version:   w.Version,
		CreatedAt: w.CreatedAt,
	}
}

type winLineItem struct {
	PaylineID int    `dynamodbav:"payline_id"`
	SymbolID  string `dynamodbav:"symbol_id"`
	Count     int    `dynamodbav:"count"`
	Payout    amount `dynamodbav:"payout"`
	Scatter   bool   `dynamodbav:"scatter"`
}

// spinItem is the spins table representation of a settled spin record.
type spinItem struct {
	ID             string        `dynamodbav:"id"`
	UserID         string        `dynamodbav:"user_id"`
	MachineID      string        `dynamodbav:"machine_id"`
	Currency       string        `dynamodbav:"currency"`
	Bet            amount        `dynamodbav:"bet"`
	Payout         amount        `dynamodbav:"payout"`
	Grid           [][]string    `dynamodbav:"grid"`
	WinLines       []winLineItem `dynamodbav:"win_lines"`
	BonusTriggered bool          `dynamodbav:"bonus_triggered"`
	CreatedAt      time.Time     `dynamodbav:"created_at"`
}

func toSpinItem(rec *models.SpinRecord) spinItem {
	lines := make([]winLineItem, len(rec.WinLines))
	for i, wl := range rec.WinLines {
		lines[i] = winLineItem{
			PaylineID: wl.PaylineID,
			SymbolID:  wl.SymbolID,
			Count:     wl.Count,
			Payout:    amount{wl.Payout},
			Scatter:   wl.Scatter,
		}
	}
	return spinItem{
		ID:             rec.ID,
		UserID:         rec.UserID,
		MachineID:      rec.MachineID,
		Currency:       string(rec.Currency),
		Bet:            amount{rec.Bet},
		Payout:         amount{rec.Payout},
		Grid:           rec.Grid,
		WinLines:       lines,
		BonusTriggered: rec.BonusTriggered,
		CreatedAt:      rec.CreatedAt,
	}
}

func (s spinItem) toModel() models.SpinRecord {
	lines := make([]models.WinLine, len(s.WinLines))
	for i, wl := range s.WinLines {
		lines[i] = models.WinLine{
			PaylineID: wl.PaylineID,
			SymbolID:  wl.SymbolID,
			Count:     wl.Count,
			Payout:    wl.Payout.Decimal,
			Scatter:   wl.Scatter,
		}
	}
	return models.SpinRecord{
		ID:             s.ID,
		UserID:         s.UserID,
		MachineID:      s.MachineID,
		Currency:       models.Currency(s.Currency),
		Bet:            s.Bet.Decimal,
		Payout:         s.Payout.Decimal,
		Grid:           s.Grid,
		WinLines:       lines,
		BonusTriggered: s.BonusTriggered,
		CreatedAt:      s.CreatedAt,
	}
}
