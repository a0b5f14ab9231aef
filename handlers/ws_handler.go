package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/venturemate/marketplace-go/chat"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub *chat.Hub
	svc *services.MessagingService
}

func NewWSHandler(hub *chat.Hub, svc *services.MessagingService) *WSHandler {
	return &WSHandler{hub: hub, svc: svc}
}

// Subscribe upgrades the connection and streams the project conversation
// until the client goes away.
func (h *WSHandler) Subscribe(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	group, err := h.svc.GroupForProject(projectID)
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	h.hub.Subscribe(group.GID, conn)
	log.Printf("chat: subscriber joined group %d", group.GID)

	go func() {
		defer func() {
			h.hub.Unsubscribe(group.GID, conn)
			conn.Close()
		}()
		for {
			// Reads only to detect disconnects; messages are posted over HTTP.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
