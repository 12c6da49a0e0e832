package websockets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PostToConnectionAPI is the subset of the API Gateway management client used to push messages.
type PostToConnectionAPI interface {
	PostToConnection(ctx context.Context, params *apigatewaymanagementapi.PostToConnectionInput, optFns ...func(*apigatewaymanagementapi.Options)) (*apigatewaymanagementapi.PostToConnectionOutput, error)
}

// DefaultPublisher broadcasts messages to every connection registered through API Gateway.
type DefaultPublisher struct {
	store  ConnectionStore
	client PostToConnectionAPI
	logger *slog.Logger
}

// Make sure we conform to the interface
var _ Publisher = (*DefaultPublisher)(nil)

// NewManagementClient creates an API Gateway management client for the websocket API at apiEndpoint.
func NewManagementClient(cfg aws.Config, apiEndpoint string) *apigatewaymanagementapi.Client {
	return apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})
}

// NewPublisherWithClient creates a DefaultPublisher on an existing client.
func NewPublisherWithClient(store ConnectionStore, client PostToConnectionAPI, logger *slog.Logger) *DefaultPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultPublisher{store: store, client: client, logger: logger}
}

// Publish sends a message to all connected clients. Connections API Gateway reports as gone are removed.
func (p *DefaultPublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.store.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to get all connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var goneErr *apigwtypes.GoneException
		if errors.As(err, &goneErr) {
			p.logger.Info("stale connection found, deleting", "connectionId", connectionID)
			if err := p.store.RemoveConnection(ctx, connectionID); err != nil {
				p.logger.Error("failed to delete stale connection", "connectionId", connectionID, "error", err)
			}
			continue
		}
		p.logger.Error("failed to post to connection", "connectionId", connectionID, "error", err)
	}

	return nil
}
