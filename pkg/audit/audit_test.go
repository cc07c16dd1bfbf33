package audit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// MockSQSAPI is a mock SQS client.
type MockSQSAPI struct {
	mock.Mock
}

func (m *MockSQSAPI) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.SendMessageOutput), args.Error(1)
}

func testRecord() *models.SpinRecord {
	return &models.SpinRecord{
		ID:        "spin-1",
		UserID:    "u1",
		MachineID: "demo",
		Currency:  models.CurrencyGold,
		Bet:       decimal.NewFromInt(2),
		Payout:    decimal.NewFromInt(10),
	}
}

func TestPublishSpin(t *testing.T) {
	client := &MockSQSAPI{}
	publisher := NewSQSPublisher(client, "https://sqs.test/queue")

	client.On("SendMessage", mock.Anything, mock.MatchedBy(func(input *sqs.SendMessageInput) bool {
		return *input.QueueUrl == "https://sqs.test/queue" &&
			strings.Contains(*input.MessageBody, `"spin-1"`)
	})).Return(&sqs.SendMessageOutput{}, nil).Once()

	require.NoError(t, publisher.PublishSpin(context.Background(), testRecord()))
	client.AssertExpectations(t)
}

func TestPublishSpinSendFailure(t *testing.T) {
	client := &MockSQSAPI{}
	publisher := NewSQSPublisher(client, "https://sqs.test/queue")

	client.On("SendMessage", mock.Anything, mock.Anything).
		Return(nil, errors.New("queue unavailable")).Once()

	err := publisher.PublishSpin(context.Background(), testRecord())
	assert.Error(t, err)
}
