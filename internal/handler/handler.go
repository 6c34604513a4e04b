package handler

import (
	"context"
	"net/http"

	"github.com/biolababs/serverless-trivia-game/pkg/logger"
	"github.com/biolababs/serverless-trivia-game/pkg/metrics"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"
	"github.com/biolababs/serverless-trivia-game/pkg/store"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ErrorBody is returned to callers whenever the lookup fails; details stay in the logs.
const ErrorBody = "error occurred retrieving player progress"

// PlayerIDParam is the path parameter carrying the player name
const PlayerIDParam = "playerId"

// Request is the inbound lookup request. Only PathParameters[PlayerIDParam] is read.
type Request struct {
	PathParameters map[string]string `json:"pathParameters"`
}

// Response is the outbound result of a lookup
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// Handler serves player progression lookups
type Handler struct {
	store  store.Store
	logger *logger.Logger
}

// New creates a Handler reading from s
func New(s store.Store, l *logger.Logger) *Handler {
	return &Handler{store: s, logger: l}
}

// Handle looks up the player's progression record.
// A missing record yields the default zero record with status 200; a store
// failure yields status 500 with ErrorBody.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	playerID := req.PathParameters[PlayerIDParam]

	rec, found, err := h.store.Get(ctx, playerID)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		h.logger.Error("error getting player progress", err, zap.String("player_id", playerID))
		return errorResponse()
	}

	outcome := metrics.OutcomeFound
	if !found {
		outcome = metrics.OutcomeDefault
		rec = progress.Default(playerID)
	}

	body, err := json.Marshal(rec)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		h.logger.Error("error encoding player progress", err, zap.String("player_id", playerID))
		return errorResponse()
	}

	metrics.LookupsTotal.WithLabelValues(outcome).Inc()
	h.logger.Debug("player progress served", zap.String("player_id", playerID), zap.String("outcome", outcome))

	return Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func errorResponse() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       ErrorBody,
	}
}
