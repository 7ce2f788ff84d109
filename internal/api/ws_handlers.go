package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/ranking"
)

const wsReadLimit = 1 << 12

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// rankMessage is one slider update sent by the dashboard.
type rankMessage struct {
	Perspective string         `json:"perspective"`
	Weights     models.Weights `json:"weights"`
	Query       string         `json:"q"`
}

type errorMessage struct {
	Error errorBody `json:"error"`
}

// handleRankSocket answers every slider update with a fresh ranking. Messages
// on one connection are handled in order, one at a time.
func (s *Server) handleRankSocket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed: %v", err)
		return
	}
	defer c.Close()
	// Clear the HTTP server's request deadlines on the hijacked connection.
	c.UnderlyingConn().SetDeadline(time.Time{})
	c.SetReadLimit(wsReadLimit)
	log.Debug("websocket connected")

	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("websocket read failed")
			}
			return
		}

		reply := s.rankReply(r, data)
		if err := c.WriteJSON(reply); err != nil {
			log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (s *Server) rankReply(r *http.Request, data []byte) any {
	var msg rankMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return socketError(errors.NewBadRequestError("invalid message: " + err.Error()))
	}

	perspective, err := models.ParsePerspective(msg.Perspective)
	if err != nil {
		return socketError(errors.NewValidationError(paramPerspective, err.Error()))
	}

	ranked, err := s.OpeningService.Rank(r.Context(), msg.Weights, perspective, msg.Query)
	if err != nil {
		return socketError(err)
	}

	return rankResponse{
		Perspective: perspective.String(),
		Mode:        ranking.Mode(msg.Weights),
		Weights:     msg.Weights,
		Openings:    ranked,
	}
}

func socketError(err error) errorMessage {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}
	return errorMessage{Error: errorBody{Code: appErr.Code, Message: appErr.Message}}
}
