package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"cadastral-lookup-api/internal/config"
	"cadastral-lookup-api/internal/handlers"
	"cadastral-lookup-api/pkg/lambda"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	config.ConfigureLogging(cfg.Logging)

	if err := lambda.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert API Gateway event to generic request
	req := lambda.FromAPIGateway(event)

	manager := lambda.GetConnectionManager()
	container, ok := manager.Container()
	if !ok {
		logrus.WithField("request_id", req.RequestID).Error("Container not initialized")
		return internalError(), nil
	}

	invocations, uptime := manager.Stats()
	logrus.WithFields(logrus.Fields{
		"request_id":  req.RequestID,
		"warm":        manager.IsWarm(),
		"invocations": invocations,
		"uptime_s":    uptime.Seconds(),
	}).Debug("Invocation started")

	parcelHandler := handlers.NewParcelHandler(container.ParcelService, container.Config.Policy)

	resp, err := parcelHandler.HandleLookup(ctx, req)
	if err != nil || resp == nil {
		return internalError(), nil
	}

	return lambda.ToAPIGateway(resp), nil
}

func internalError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: 500,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: `{"error": "Internal server error"}`,
	}
}

// shutdown releases the warm container when the runtime stops the environment
func shutdown() {
	if err := lambda.GetConnectionManager().Cleanup(); err != nil {
		logrus.WithError(err).Error("Failed to clean up container")
		return
	}
	logrus.Info("Container cleaned up")
}

func main() {
	awslambda.StartWithOptions(handler, awslambda.WithEnableSIGTERM(shutdown))
}
