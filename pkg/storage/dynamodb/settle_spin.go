package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
)

// settleAttempts bounds the optimistic retries when concurrent settlements
// race on the same wallet row.
const settleAttempts = 5

// SettleSpin atomically applies a spin's bet debit and payout credit to the
// wallet row and appends the spin record, in one TransactWriteItems call.
// The balance and version checks run server-side as condition expressions,
// so two concurrent spins can never both spend the same funds: the loser's
// settlement rolls back untouched and is retried against the fresh balance.
func (s *Store) SettleSpin(ctx context.Context, record *models.SpinRecord) (decimal.Decimal, error) {
	// Marshal the spin record for the Put operation.
	spinAV, err := attributevalue.MarshalMap(toSpinItem(record))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to marshal spin record: %w", err)
	}

	for attempt := 0; attempt < settleAttempts; attempt++ {
		// 1. Read the wallet for the optimistic version check.
		wallet, err := s.GetWallet(ctx, record.UserID, record.Currency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to get wallet for settlement: %w", err)
		}

		// 2. The balance the version check pins down must cover the bet.
		if wallet.Balance.LessThan(record.Bet) {
			return decimal.Zero, fmt.Errorf("settling spin %s: %w", record.ID, storage.ErrInsufficientFunds)
		}

		// 3. Construct the TransactWriteItems input.
		input := &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{
					// Operation 1: apply the debit and credit to the wallet.
					Update: &types.Update{
						TableName: aws.String(s.WalletsTableName),
						Key: map[string]types.AttributeValue{
							"user_id":  &types.AttributeValueMemberS{Value: record.UserID},
							"currency": &types.AttributeValueMemberS{Value: string(record.Currency)},
						},
						UpdateExpression:    aws.String("SET balance = balance - :bet + :payout, version = version + :inc"),
						ConditionExpression: aws.String("balance >= :bet AND version = :version"),
						ExpressionAttributeValues: map[string]types.AttributeValue{
							":bet":     &types.AttributeValueMemberN{Value: record.Bet.String()},
							":payout":  &types.AttributeValueMemberN{Value: record.Payout.String()},
							":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", wallet.Version)},
							":inc":     &types.AttributeValueMemberN{Value: "1"},
						},
					},
				},
				{
					// Operation 2: append the spin record.
					Put: &types.Put{
						TableName:           aws.String(s.SpinsTableName),
						Item:                spinAV,
						ConditionExpression: aws.String("attribute_not_exists(id)"),
					},
				},
			},
		}

		// 4. Execute the transaction.
		_, err = s.Client.TransactWriteItems(ctx, input)
		if err == nil {
			// The version condition held, so the read balance was current.
			return wallet.Balance.Sub(record.Bet).Add(record.Payout), nil
		}

		// A conditional check failure means a concurrent settlement bumped
		// the version between our read and write. Re-read and retry; the
		// fresh balance decides whether the bet is still coverable.
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) && conditionalCheckFailed(txc) {
			continue
		}
		return decimal.Zero, fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	return decimal.Zero, fmt.Errorf("settlement of spin %s contended %d times, giving up", record.ID, settleAttempts)
}

func conditionalCheckFailed(txc *types.TransactionCanceledException) bool {
	for _, reason := range txc.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
