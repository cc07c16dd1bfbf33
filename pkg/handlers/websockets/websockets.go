// Package websockets exposes the win-feed subscription endpoints: the
// API Gateway $connect/$disconnect routes for the lambda deployment, and a
// plain HTTP upgrade path for the local server.
package websockets

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/coinkrazygaming/social-coin-sub000/pkg/websockets"
)

// Handler registers and unregisters win-feed subscribers. Big-win broadcasts
// fan out to whatever connection ids are registered at publish time.
type Handler struct {
	connManager websockets.ConnectionManager
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager) *Handler {
	return &Handler{
		connManager: connManager,
	}
}

// HandleConnect subscribes a new client to the win feed.
func (h *Handler) HandleConnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("win feed client connected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.connManager.AddConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to save connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDisconnect unsubscribes a client from the win feed.
func (h *Handler) HandleDisconnect(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("win feed client disconnected", "connectionId", request.RequestContext.ConnectionID)

	if err := h.connManager.RemoveConnection(ctx, request.RequestContext.ConnectionID); err != nil {
		slog.Error("failed to delete connection ID", "error", err)
		return events.APIGatewayProxyResponse{StatusCode: 500}, err
	}

	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

// HandleDefault logs unexpected client messages. The feed is one-way; clients
// only listen.
func (h *Handler) HandleDefault(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slog.Info("win feed message ignored", "connectionId", request.RequestContext.ConnectionID, "body", request.Body)
	return events.APIGatewayProxyResponse{StatusCode: 200}, nil
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for local development.
		return true
	},
}

// ServeHTTP upgrades a plain HTTP request into a win-feed subscription. It
// serves the local server, where no API Gateway sits in front to issue
// connection ids, so ids are generated here.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	slog.Info("win feed client connected locally", "connectionId", connectionID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID); err != nil {
		slog.Error("failed to save local connection ID", "error", err)
		return
	}

	defer func() {
		slog.Info("win feed client disconnected locally", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			slog.Error("failed to delete local connection ID", "error", err)
		}
	}()

	// The read loop exists only to notice the client going away; incoming
	// frames are discarded.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("unexpected close error", "error", err)
			}
			break
		}
	}
}
