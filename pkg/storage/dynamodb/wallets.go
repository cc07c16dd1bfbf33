package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
)

// GetWallet retrieves a (user, currency) account from DynamoDB. Durable
// wallets are provisioned by the surrounding account system, so a missing
// item is ErrWalletNotFound rather than a lazily seeded account.
func (s *Store) GetWallet(ctx context.Context, userID string, currency models.Currency) (*models.Wallet, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"user_id":  userID,
		"currency": string(currency),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.WalletsTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("%w: %s/%s", storage.ErrWalletNotFound, userID, currency)
	}

	var item walletItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet: %w", err)
	}

	wallet := item.toModel()
	return &wallet, nil
}

// ListWallets retrieves all of a user's accounts.
func (s *Store) ListWallets(ctx context.Context, userID string) ([]models.Wallet, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WalletsTableName),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}

	var items []walletItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets: %w", err)
	}

	wallets := make([]models.Wallet, len(items))
	for i, item := range items {
		wallets[i] = item.toModel()
	}
	return wallets, nil
}
