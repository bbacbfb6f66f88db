package queue

import (
	"context"
	"encoding/json"
	"time"

	"tesoro-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DecisionEvent is the message published for every recorded decision so
// downstream settlement tooling can react without polling the audit table.
type DecisionEvent struct {
	DecisionID  string    `json:"decision_id"`
	TreasuryID  string    `json:"treasury_id"`
	Entrypoint  string    `json:"entrypoint"`
	Action      string    `json:"action,omitempty"`
	ScopeName   string    `json:"scope_name,omitempty"`
	Accepted    bool      `json:"accepted"`
	ErrorKind   string    `json:"error_kind,omitempty"`
	RequestHash string    `json:"request_hash"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher sends decision events to an SQS queue. A nil Publisher is a
// no-op so local development runs without AWS credentials.
type Publisher struct {
	client   *sqs.Client
	queueURL string
}

// NewPublisher builds a Publisher against the configured queue URL using the
// default AWS credential chain.
func NewPublisher(ctx context.Context, queueURL string) (*Publisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	return &Publisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// Publish sends one decision event. Publishing is best-effort relative to
// the request that produced the decision: a queue failure is logged, not
// surfaced, because the decision row is already durable.
func (p *Publisher) Publish(ctx context.Context, event DecisionEvent) {
	if p == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal decision event", zap.Error(err))
		return
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		logger.Error("Failed to publish decision event",
			zap.Error(err),
			zap.String("decision_id", event.DecisionID),
		)
		return
	}
	logger.Debug("Published decision event",
		zap.String("decision_id", event.DecisionID),
		zap.Bool("accepted", event.Accepted),
	)
}
