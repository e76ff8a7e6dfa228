package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robokit/robokit-backend/internal/http/response"
	"github.com/robokit/robokit-backend/internal/pkg/errors"
	"github.com/robokit/robokit-backend/internal/services"
)

type BenchmarkHandler struct {
	benchmarkService services.BenchmarkService
}

func NewBenchmarkHandler(benchmarkService services.BenchmarkService) *BenchmarkHandler {
	return &BenchmarkHandler{benchmarkService: benchmarkService}
}

func (bh *BenchmarkHandler) Run(c *gin.Context) {
	var req struct {
		N int `json:"n"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := bh.benchmarkService.Run(c.Request.Context(), req.N)
	if err != nil {
		if stderrors.Is(err, errors.ErrInvalidArgument) {
			response.RespondError(c, http.StatusBadRequest, "invalid_n", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "benchmark_failed", err)
		return
	}
	response.RespondOK(c, result)
}
