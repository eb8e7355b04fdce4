package controllers

import (
	"net/http"
	"time"

	"github.com/DerekRojGar/awa-AquaReminder/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	// Loopback-only server; the CORS layer already restricts the UI origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ProgressWS streams ProgressEvent payloads to a connected UI surface.
func (rc *RealtimeController) ProgressWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Conn: conn}
	rc.RT.Register(cl)

	// keepalive pings so an idle progress ring doesn't lose its socket; they
	// go through the client so they cannot interleave with a broadcast frame
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Write(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
