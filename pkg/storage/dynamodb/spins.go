package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

const spinHistoryGSI = "user_id-created_at-index"

// ListSpins retrieves a user's most recent spin records, newest first.
func (s *Store) ListSpins(ctx context.Context, userID string, limit int32) ([]models.SpinRecord, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.SpinsTableName),
		IndexName:              aws.String(spinHistoryGSI),
		KeyConditionExpression: aws.String("user_id = :user_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query spin history: %w", err)
	}

	var items []spinItem
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spin records: %w", err)
	}

	records := make([]models.SpinRecord, len(items))
	for i, item := range items {
		records[i] = item.toModel()
	}
	return records, nil
}
