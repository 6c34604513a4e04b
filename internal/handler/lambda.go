package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaFunc is the signature lambda.Start expects for API Gateway proxy events
type LambdaFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// LambdaHandler adapts h to API Gateway proxy integration.
// Failures are reported through the status code, never as an invocation error.
func LambdaHandler(h *Handler) LambdaFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		resp := h.Handle(ctx, Request{PathParameters: event.PathParameters})
		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	}
}
