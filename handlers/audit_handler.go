package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
)

type AuditHandler struct {
	svc *services.AuditService
}

func NewAuditHandler(svc *services.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// Query godoc
// @Summary Query audit logs
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query uint false "Filter by user"
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param start_time query string false "RFC3339 lower bound"
// @Param end_time query string false "RFC3339 upper bound"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} response.ErrorResponse
// @Router /audit [get]
func (h *AuditHandler) Query(c *gin.Context) {
	var params repositories.AuditQueryParams

	if v := c.Query("user_id"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
			return
		}
		id := uint(id64)
		params.UserID = &id
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("start_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start_time"})
			return
		}
		params.StartTime = &t
	}
	if v := c.Query("end_time"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end_time"})
			return
		}
		params.EndTime = &t
	}
	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
