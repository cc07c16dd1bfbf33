// Package audit publishes settled spin records to an SQS queue for
// downstream consumers (compliance trail, analytics). Publishing happens
// after the settlement has committed and is best-effort from the spin's
// point of view.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/models"
)

// Publisher defines the interface for a component that records settled spins
// on an external audit trail.
type Publisher interface {
	// PublishSpin enqueues a settled spin record.
	PublishSpin(ctx context.Context, record *models.SpinRecord) error
}

// SQSAPI is the subset of the SQS client used by the publisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher publishes spin records as JSON messages on one queue.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

// NewSQSPublisher creates a publisher for the given queue.
func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

// Make sure we conform to the interface
var _ Publisher = (*SQSPublisher)(nil)

// PublishSpin enqueues one settled spin record.
func (p *SQSPublisher) PublishSpin(ctx context.Context, record *models.SpinRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal spin record: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send spin record to SQS: %w", err)
	}
	return nil
}
