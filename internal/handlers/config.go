package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robokit/robokit-backend/internal/configurator"
	"github.com/robokit/robokit-backend/internal/http/response"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/services"
	"github.com/robokit/robokit-backend/internal/types"
)

type ConfigHandler struct {
	configService services.ConfigService
}

func NewConfigHandler(configService services.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

func (ch *ConfigHandler) Generate(c *gin.Context) {
	var req types.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	resp, err := ch.configService.Generate(c.Request.Context(), &req)
	if err != nil {
		status, code := configStatus(err)
		response.RespondError(c, status, code, err)
		return
	}
	response.RespondOK(c, resp)
}

// configStatus maps configurator failures to 400s; anything else is a 500.
func configStatus(err error) (int, string) {
	var budgetErr *configurator.BudgetError
	var weightErr *configurator.WeightError
	var unavailableErr *configurator.UnavailableError
	var planningErr *configurator.PlanningError
	switch {
	case stderrors.Is(err, configurator.ErrMissingInput):
		return http.StatusBadRequest, "missing_input"
	case stderrors.As(err, &budgetErr):
		return http.StatusBadRequest, "budget_exceeded"
	case stderrors.As(err, &weightErr):
		return http.StatusBadRequest, "weight_exceeded"
	case stderrors.As(err, &unavailableErr):
		return http.StatusBadRequest, "component_unavailable"
	case stderrors.As(err, &planningErr):
		return http.StatusBadRequest, "planning_failed"
	case stderrors.Is(err, errors.ErrCatalogEmpty):
		return http.StatusNotFound, "catalog_empty"
	default:
		return http.StatusInternalServerError, "config_failed"
	}
}
