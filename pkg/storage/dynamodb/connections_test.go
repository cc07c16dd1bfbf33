package dynamodb

import (
	"context"
	"testing"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddConnection(t *testing.T) {
	store, client := newTestStore(t)

	client.On("PutItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.PutItemInput) bool {
		id := input.Item["connection_id"].(*types.AttributeValueMemberS)
		return *input.TableName == "connections-table" && id.Value == "conn-1"
	})).Return(&awsdynamodb.PutItemOutput{}, nil).Once()

	require.NoError(t, store.AddConnection(context.Background(), "conn-1"))
}

func TestRemoveConnection(t *testing.T) {
	store, client := newTestStore(t)

	client.On("DeleteItem", mock.Anything, mock.MatchedBy(func(input *awsdynamodb.DeleteItemInput) bool {
		id := input.Key["connection_id"].(*types.AttributeValueMemberS)
		return *input.TableName == "connections-table" && id.Value == "conn-1"
	})).Return(&awsdynamodb.DeleteItemOutput{}, nil).Once()

	require.NoError(t, store.RemoveConnection(context.Background(), "conn-1"))
}

func TestGetAllConnections(t *testing.T) {
	store, client := newTestStore(t)

	client.On("Query", mock.Anything, mock.Anything).
		Return(&awsdynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				{
					"pk":            &types.AttributeValueMemberS{Value: "connections"},
					"connection_id": &types.AttributeValueMemberS{Value: "conn-1"},
				},
				{
					"pk":            &types.AttributeValueMemberS{Value: "connections"},
					"connection_id": &types.AttributeValueMemberS{Value: "conn-2"},
				},
			},
		}, nil).Once()

	ids, err := store.GetAllConnections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"conn-1", "conn-2"}, ids)
}
