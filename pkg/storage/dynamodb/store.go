// Package dynamodb implements the storage interfaces on AWS DynamoDB.
// Settlement atomicity comes from a single TransactWriteItems call with a
// conditional balance check, so a spin's debit, credit, and record append
// commit together or not at all.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Tests substitute a generated mock.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client                        DynamoDBAPI
	WalletsTableName              string
	SpinsTableName                string
	WebsocketConnectionsTableName string
}

// New creates a new Store.
func New(client DynamoDBAPI, walletsTable, spinsTable, connectionsTable string) *Store {
	return &Store{
		Client:                        client,
		WalletsTableName:              walletsTable,
		SpinsTableName:                spinsTable,
		WebsocketConnectionsTableName: connectionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
