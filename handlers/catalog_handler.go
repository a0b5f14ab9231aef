package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/utils"
)

type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListServices godoc
// @Summary List catalog services
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Service
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.svc.ListServices()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListPacks godoc
// @Summary List catalog packs
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Pack
// @Router /catalog/packs [get]
func (h *CatalogHandler) ListPacks(c *gin.Context) {
	items, err := h.svc.ListPacks()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateService godoc
// @Summary Create a catalog service
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ServiceDTO true "Service"
// @Success 201 {object} models.Service
// @Failure 409 {object} response.ErrorResponse
// @Router /catalog/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input dto.ServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	svc, err := h.svc.CreateService(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// CreatePack godoc
// @Summary Create a catalog pack
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PackDTO true "Pack"
// @Success 201 {object} models.Pack
// @Failure 409 {object} response.ErrorResponse
// @Router /catalog/packs [post]
func (h *CatalogHandler) CreatePack(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var input dto.PackDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	pack, err := h.svc.CreatePack(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pack)
}

// DeleteService godoc
// @Summary Delete a catalog service
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Service ID"
// @Success 200 {object} response.MessageResponse
// @Router /catalog/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid service id"})
		return
	}
	if err := h.svc.DeleteService(actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "service deleted"})
}

// DeletePack godoc
// @Summary Delete a catalog pack
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Pack ID"
// @Success 200 {object} response.MessageResponse
// @Router /catalog/packs/{id} [delete]
func (h *CatalogHandler) DeletePack(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid pack id"})
		return
	}
	if err := h.svc.DeletePack(actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pack deleted"})
}
