package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robokit/robokit-backend/internal/http/response"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/services"
)

type ComponentsHandler struct {
	catalogService services.CatalogService
}

func NewComponentsHandler(catalogService services.CatalogService) *ComponentsHandler {
	return &ComponentsHandler{catalogService: catalogService}
}

func (ch *ComponentsHandler) List(c *gin.Context) {
	parts, err := ch.catalogService.List(c.Request.Context())
	if err != nil {
		if stderrors.Is(err, errors.ErrCatalogEmpty) {
			response.RespondError(c, http.StatusNotFound, "catalog_empty", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "catalog_load_failed", err)
		return
	}
	response.RespondOK(c, parts)
}
