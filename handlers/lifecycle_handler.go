package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/utils"
)

// LifecycleHandler exposes the status transitions. Every endpoint returns the
// TransitionResult so the client can see which steps committed even when the
// request failed part-way.
type LifecycleHandler struct {
	svc *services.LifecycleService
}

func NewLifecycleHandler(svc *services.LifecycleService) *LifecycleHandler {
	return &LifecycleHandler{svc: svc}
}

func (h *LifecycleHandler) run(c *gin.Context, fn func() (services.TransitionResult, error)) {
	res, err := fn()
	if err != nil {
		// Partial progress still matters to the caller; ship the result
		// alongside the error.
		status := statusFor(err)
		c.JSON(status, gin.H{"error": err.Error(), "result": res})
		return
	}
	c.JSON(http.StatusOK, res)
}

// SendProposals godoc
// @Summary Advance a project from New to Proposals Sent
// @Tags lifecycle
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} services.TransitionResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{id}/send-proposals [post]
func (h *LifecycleHandler) SendProposals(c *gin.Context) {
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
	h.run(c, func() (services.TransitionResult, error) {
		return h.svc.SendProposals(actor, id)
	})
}

// OpenSelection godoc
// @Summary Advance a project from Proposals Sent to Selection
// @Tags lifecycle
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param request body dto.OpenSelectionDTO true "Shortlisted students"
// @Success 200 {object} services.TransitionResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{id}/open-selection [post]
func (h *LifecycleHandler) OpenSelection(c *gin.Context) {
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
	var input dto.OpenSelectionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	h.run(c, func() (services.TransitionResult, error) {
		return h.svc.OpenSelection(actor, id, input.StudentIDs)
	})
}

// SelectStudent godoc
// @Summary Pick the winning student, advancing Selection to Payment
// @Tags lifecycle
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param request body dto.SelectStudentDTO true "Chosen student"
// @Success 200 {object} services.TransitionResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{id}/select-student [post]
func (h *LifecycleHandler) SelectStudent(c *gin.Context) {
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
	var input dto.SelectStudentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	h.run(c, func() (services.TransitionResult, error) {
		return h.svc.SelectStudent(actor, id, input.StudentID)
	})
}

// ConfirmPayment godoc
// @Summary Advance a project from Payment to Active
// @Tags lifecycle
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} services.TransitionResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{id}/confirm-payment [post]
func (h *LifecycleHandler) ConfirmPayment(c *gin.Context) {
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
	h.run(c, func() (services.TransitionResult, error) {
		return h.svc.ConfirmPayment(actor, id)
	})
}

// Complete godoc
// @Summary Advance a project from Active to Completed
// @Tags lifecycle
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {object} services.TransitionResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{id}/complete [post]
func (h *LifecycleHandler) Complete(c *gin.Context) {
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
	h.run(c, func() (services.TransitionResult, error) {
		return h.svc.Complete(actor, id)
	})
}
