package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robokit/robokit-backend/internal/http/response"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/services"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (hh *HistoryHandler) List(c *gin.Context) {
	entries, err := hh.historyService.List(c.Request.Context())
	if err != nil {
		if stderrors.Is(err, errors.ErrUnauthorized) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "history_load_failed", err)
		return
	}
	response.RespondOK(c, entries)
}

func (hh *HistoryHandler) Clear(c *gin.Context) {
	if err := hh.historyService.Clear(c.Request.Context()); err != nil {
		if stderrors.Is(err, errors.ErrUnauthorized) {
			response.RespondError(c, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "history_clear_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"cleared": true})
}
