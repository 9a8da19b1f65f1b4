package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bankmatch/internal/api/dto"
	"bankmatch/internal/infrastructure/storage"
)

// RunsHandler serves persisted reconciliation runs.
type RunsHandler struct {
	repo storage.Repository
}

// NewRunsHandler creates a new runs handler.
func NewRunsHandler(repo storage.Repository) *RunsHandler {
	return &RunsHandler{repo: repo}
}

// List handles GET /api/runs.
func (h *RunsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	runs, err := h.repo.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}
	if runs == nil {
		runs = []*storage.ReconciliationRun{}
	}

	c.JSON(http.StatusOK, dto.RunListResponse{Runs: runs, Count: len(runs)})
}

// Get handles GET /api/runs/:id, including per-transaction outcomes.
func (h *RunsHandler) Get(c *gin.Context) {
	id := c.Param("id")

	run, err := h.repo.GetRun(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, dto.NotFoundError("run"))
		return
	}

	outcomes, err := h.repo.GetRunOutcomes(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return
	}

	c.JSON(http.StatusOK, dto.RunResponse{Run: run, Outcomes: outcomes})
}
