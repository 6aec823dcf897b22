package main

import (
	"context"
	"encoding/json"
	"fmt"

	"notes-api/internal/handlers"
	"notes-api/internal/middleware"
	"notes-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// The container, and with it the DynamoDB client, is built on the first
// invocation and reused while the process stays warm
var connections = lambda.GetConnectionManager()

func handler(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	req, err := lambda.DecodeEvent(event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		req.RequestID = lc.AwsRequestID
	}

	container, err := connections.GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("failed to get container: %w", err)
	}

	router := handlers.NewRouter(container.NoteService)
	handle := middleware.InvocationLogger(container.Logger, router.Handler())

	resp, err := handle(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return lambda.ToGatewayResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
