package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// connectionsPK is the partition all live win-feed connections share, so one
// query fans a broadcast out to every subscriber.
const connectionsPK = "connections"

// winFeedConnection is a record in the win-feed connections table.
type winFeedConnection struct {
	PK           string `dynamodbav:"pk"`
	ConnectionID string `dynamodbav:"connection_id"`
}

// AddConnection saves a new win-feed WebSocket connection ID.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	item, err := attributevalue.MarshalMap(winFeedConnection{PK: connectionsPK, ConnectionID: connectionID})
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.WebsocketConnectionsTableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put connection: %w", err)
	}
	return nil
}

// RemoveConnection deletes a win-feed WebSocket connection ID.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{
		"pk":            connectionsPK,
		"connection_id": connectionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection key: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.WebsocketConnectionsTableName),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	return nil
}

// GetAllConnections returns the IDs of every live win-feed connection.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WebsocketConnectionsTableName),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: connectionsPK},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}

	var conns []winFeedConnection
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &conns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	ids := make([]string, len(conns))
	for i, c := range conns {
		ids[i] = c.ConnectionID
	}
	return ids, nil
}
