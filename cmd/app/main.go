package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/audit"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/catalog"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/handlers"
	wsapi "github.com/coinkrazygaming/social-coin-sub000/pkg/handlers/websockets"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/middleware"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/slots"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/stats"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage"
	dydbstore "github.com/coinkrazygaming/social-coin-sub000/pkg/storage/dynamodb"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/storage/memory"
	"github.com/coinkrazygaming/social-coin-sub000/pkg/websockets"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load and validate the machine catalog. A malformed machine definition
	// fails here, never at spin time.
	machinesPath := os.Getenv("MACHINES_PATH")
	if machinesPath == "" {
		machinesPath = "machines"
	}
	cat, err := catalog.Load(machinesPath)
	if err != nil {
		log.Fatalf("failed to load machine catalog: %v", err)
	}
	log.Printf("Loaded %d machines from %s", len(cat.List()), machinesPath)

	tracker := stats.NewTracker()
	engine := slots.NewEngine(cat, slots.NewSampler(nil), nil, tracker)

	// Pick the storage backend: DynamoDB when the wallet table is
	// configured, the in-memory demo store otherwise.
	var store storage.Storage
	var feedHandler *wsapi.Handler
	walletsTable := os.Getenv("DYNAMODB_WALLETS_TABLE_NAME")
	if walletsTable != "" {
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}

		spinsTable := os.Getenv("DYNAMODB_SPINS_TABLE_NAME")
		connectionsTable := os.Getenv("DYNAMODB_WEBSOCKET_CONNECTIONS_TABLE_NAME")
		if spinsTable == "" {
			log.Fatal("DYNAMODB_SPINS_TABLE_NAME environment variable not set")
		}

		dydb := dydbstore.New(dynamodb.NewFromConfig(cfg), walletsTable, spinsTable, connectionsTable)
		store = dydb

		// Audit trail of settled spins, if a queue is configured.
		if queueURL := os.Getenv("SQS_QUEUE_URL"); queueURL != "" {
			engine.Auditor = audit.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
		}

		// Big-win broadcast, if a websocket API endpoint is configured.
		// The local /feed route registers subscribers in the same
		// connections table the API Gateway routes use.
		if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" && connectionsTable != "" {
			publisher, err := websockets.NewPublisher(dydb, dydb, endpoint)
			if err != nil {
				log.Fatalf("failed to create websocket publisher: %v", err)
			}
			engine.WinFeed = publisher
			feedHandler = wsapi.NewHandler(dydb)
		}
	} else {
		log.Println("DYNAMODB_WALLETS_TABLE_NAME not set, using in-memory storage")
		store = memory.New(memory.DefaultSeeds())
	}
	engine.Store = store

	// Create our handler and router.
	handler := handlers.NewApiHandler(cat, engine, store, tracker)

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	handler.Mount(router)
	if feedHandler != nil {
		router.Handle("/feed", feedHandler)
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
