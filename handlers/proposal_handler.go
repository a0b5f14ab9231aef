package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/utils"
)

type ProposalHandler struct {
	svc *services.ProposalService
}

func NewProposalHandler(svc *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{svc: svc}
}

// ProposeStudents godoc
// @Summary Record proposals for students on a project
// @Tags proposals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param request body dto.ProposeStudentsDTO true "Students to propose"
// @Success 201 {array} models.Proposal
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /projects/{id}/proposals [post]
func (h *ProposalHandler) ProposeStudents(c *gin.Context) {
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
	var input dto.ProposeStudentsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.svc.ProposeStudents(actor, id, input.StudentIDs)
	if err != nil {
		// Rows inserted before the failure stay in place; report them.
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "created": created})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProjectProposals godoc
// @Summary List all proposals of a project
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.Proposal
// @Failure 403 {object} response.ErrorResponse
// @Router /projects/{id}/proposals [get]
func (h *ProposalHandler) ListProjectProposals(c *gin.Context) {
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
	proposals, err := h.svc.ProjectProposals(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// MyProposals godoc
// @Summary List proposals addressed to the calling student
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Proposal
// @Failure 403 {object} response.ErrorResponse
// @Router /proposals/mine [get]
func (h *ProposalHandler) MyProposals(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	proposals, err := h.svc.MyProposals(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// RecordAcceptance godoc
// @Summary Accept or decline a proposal (final, one write only)
// @Tags proposals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Proposal ID"
// @Param request body dto.AcceptanceDTO true "Answer"
// @Success 200 {object} models.Proposal
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /proposals/{id}/acceptance [put]
func (h *ProposalHandler) RecordAcceptance(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	var input dto.AcceptanceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	proposal, err := h.svc.RecordAcceptance(actor, id, *input.Accepted)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

// Shortlist godoc
// @Summary List the candidate shortlist of a project
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.ProposedStudent
// @Router /projects/{id}/shortlist [get]
func (h *ProposalHandler) Shortlist(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	shortlisted, err := h.svc.Shortlist(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, shortlisted)
}
