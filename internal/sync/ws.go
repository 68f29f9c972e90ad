package sync

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // API is CORS-open; the WS endpoint follows suit
	},
}

// eventTypes is announced in the welcome frame so clients know what the feed
// carries.
var eventTypes = []string{"annotation_created", "annotation_deleted", "progress_updated"}

func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.AddWS(ws)
		log.Println("[sync] client connected")

		welcome, _ := json.Marshal(Event{
			Type:    "welcome",
			Payload: gin.H{"events": eventTypes},
		})
		_ = ws.WriteMessage(websocket.TextMessage, append(welcome, '\n'))

		// the feed is one-way; reads only serve to notice the close
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.RemoveWS(ws)
		log.Println("[sync] client disconnected")
	}
}
