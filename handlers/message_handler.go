package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/utils"
)

type MessageHandler struct {
	svc *services.MessagingService
}

func NewMessageHandler(svc *services.MessagingService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SendMessage godoc
// @Summary Post a message into the project conversation
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param request body dto.SendMessageDTO true "Message"
// @Success 201 {object} models.Message
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	var input dto.SendMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	msg, err := h.svc.SendMessage(id, actor.UserID, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// History godoc
// @Summary List the project conversation in order
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.Message
// @Router /projects/{id}/messages [get]
func (h *MessageHandler) History(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	msgs, err := h.svc.History(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// Notifications godoc
// @Summary List notifications addressed to the caller
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Message
// @Router /notifications [get]
func (h *MessageHandler) Notifications(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	msgs, err := h.svc.Notifications(actor.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Message ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid message id"})
		return
	}
	if err := h.svc.MarkRead(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "marked read"})
}
