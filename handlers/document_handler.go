package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/utils"
)

type DocumentHandler struct {
	svc *services.DocumentService
}

func NewDocumentHandler(svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// Upload godoc
// @Summary Upload a project document
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Project ID"
// @Param file formData file true "Document"
// @Success 201 {object} models.Document
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot open uploaded file"})
		return
	}
	defer file.Close()

	doc, err := h.svc.Upload(c.Request.Context(), actor, id,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Download godoc
// @Summary Download a document
// @Tags documents
// @Security BearerAuth
// @Produce octet-stream
// @Param id path uint true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	doc, data, err := h.svc.Download(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+doc.Name+"\"")
	c.Data(http.StatusOK, doc.ContentType, data)
}

// ListByProject godoc
// @Summary List documents of a project
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.Document
// @Router /projects/{id}/documents [get]
func (h *DocumentHandler) ListByProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	docs, err := h.svc.ListByProject(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// Delete godoc
// @Summary Delete a document
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Document ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "document deleted"})
}
