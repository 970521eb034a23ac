package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/infrastructure/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// MessageSocketController owns the live channel. A client connects, announces
// its identity with a registerUser frame, and from then on receives
// receiveMessage pushes until the socket closes.
type MessageSocketController struct {
	registry *realtime.Registry
}

func NewMessageSocketController(registry *realtime.Registry) *MessageSocketController {
	return &MessageSocketController{registry: registry}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when deploying.
		return true
	},
}

type inboundFrame struct {
	Type   string `json:"type"`
	UserID string `json:"userId,omitempty"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

type ackFrame struct {
	Type string `json:"type"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades HTTP connections to websocket and processes frames until the
// client disconnects. Presence registration happens on the registerUser frame,
// not at upgrade time, so an unannounced socket receives nothing.
func (ctl *MessageSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; nothing more to do.
			return
		}

		conn := realtime.NewConnection(ws)
		conn.Start()
		defer func() {
			ctl.registry.Unregister(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 20)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			switch frame.Type {
			case "registerUser":
				if frame.UserID == "" {
					ctl.replyError(conn, "bad_request", "userId is required")
					continue
				}
				ctl.registry.Register(frame.UserID, conn)
			default:
				ctl.replyError(conn, "unsupported_type", "unknown frame type")
			}
		}
	}
}

func (ctl *MessageSocketController) replyError(conn *realtime.Connection, code string, message string) {
	frame := errorFrame{Type: "error", Code: code, Error: message}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}
