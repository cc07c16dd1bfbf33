package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	wsapi "github.com/coinkrazygaming/social-coin-sub000/pkg/handlers/websockets"
	dydbstore "github.com/coinkrazygaming/social-coin-sub000/pkg/storage/dynamodb"
)

var handler *wsapi.Handler

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	connectionsTable := os.Getenv("DYNAMODB_WEBSOCKET_CONNECTIONS_TABLE_NAME")
	if connectionsTable == "" {
		log.Fatal("DYNAMODB_WEBSOCKET_CONNECTIONS_TABLE_NAME environment variable not set")
	}

	// The connect/disconnect routes only touch the connections table.
	store := dydbstore.New(dynamodb.NewFromConfig(cfg), "", "", connectionsTable)
	handler = wsapi.NewHandler(store)
}

// HandleRequest dispatches API Gateway websocket events by route key.
func HandleRequest(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return handler.HandleConnect(ctx, request)
	case "$disconnect":
		return handler.HandleDisconnect(ctx, request)
	default:
		return handler.HandleDefault(ctx, request)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
