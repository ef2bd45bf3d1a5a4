package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/infrastructure/realtime"
	"github.com/rafabene/docrepo-backend/internal/services"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
	// pongWait precisa ser maior que pingInterval
	pongWait = pingInterval + 10*time.Second
)

type accessChecker interface {
	CanAccess(ctx context.Context, userID string, role entities.Role, clientID string) (bool, error)
}

type eventSource interface {
	Subscribe(clientID string) (<-chan realtime.Event, func())
}

// RealtimeHandler mantém o feed de atualização das telas abertas de um cliente
type RealtimeHandler struct {
	events   eventSource
	access   accessChecker
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewRealtimeHandler cria o handler. checkOrigin nil aceita apenas a mesma origem.
func NewRealtimeHandler(events eventSource, access accessChecker, checkOrigin func(r *http.Request) bool, logger ports.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		events: events,
		access: access,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// Stream godoc
// @Summary      Feed de atualização do cliente
// @Description  WebSocket que recebe {clientId, kind, at} a cada mutação no cliente
// @Tags         realtime
// @Param        clientId  path  string  true  "ID do cliente"
// @Success      101
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /ws/clients/{clientId} [get]
func (h *RealtimeHandler) Stream(c *gin.Context) {
	identity, ok := actor(c)
	if !ok {
		return
	}

	clientID := c.Param("clientId")
	allowed, err := h.access.CanAccess(c.Request.Context(), identity.UserID, entities.ParseRole(identity.Role), clientID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !allowed {
		respondError(c, h.logger, errors.ErrNoClientAccess)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade já respondeu com o status de erro
		h.logger.Warn("websocket upgrade failed", "client_id", clientID, "error", err)
		return
	}
	defer conn.Close()

	events, cancel := h.events.Subscribe(clientID)
	defer cancel()

	log := h.logger.With("client_id", clientID, "user_id", identity.UserID)
	log.Debug("realtime subscriber connected")

	stillAllowed := func() bool {
		allowed, err := h.access.CanAccess(c.Request.Context(), identity.UserID, entities.ParseRole(identity.Role), clientID)
		if err != nil {
			log.Warn("realtime access recheck failed", "error", err)
			return false
		}
		return allowed
	}

	closed := h.readUntilClosed(conn)
	h.writeLoop(conn, events, closed, stillAllowed, log)

	log.Debug("realtime subscriber disconnected")
}

// readUntilClosed descarta mensagens do navegador e sinaliza quando a conexão cai
func (h *RealtimeHandler) readUntilClosed(conn *websocket.Conn) <-chan struct{} {
	closed := make(chan struct{})

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	return closed
}

// writeLoop repassa os eventos ao navegador. Mudança de membros reconfere o
// acesso; quem perdeu a membership recebe close e sai do feed.
func (h *RealtimeHandler) writeLoop(conn *websocket.Conn, events <-chan realtime.Event, closed <-chan struct{}, stillAllowed func() bool, log ports.Logger) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Kind == services.RefreshMembers && !stillAllowed() {
				log.Info("realtime subscriber lost access, closing")
				closeMsg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "access revoked")
				_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeTimeout))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Warn("realtime write failed", "error", err)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn("realtime ping failed", "error", err)
				return
			}

		case <-closed:
			return
		}
	}
}
