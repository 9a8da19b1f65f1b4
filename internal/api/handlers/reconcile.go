package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bankmatch/internal/api/dto"
	"bankmatch/internal/infrastructure/storage"
	"bankmatch/internal/reconciler"
)

// ReconcileHandler runs the engine over whole collections and persists the
// outcome.
type ReconcileHandler struct {
	reconciler *reconciler.Reconciler
	repo       storage.Repository
	logger     *slog.Logger
}

// NewReconcileHandler creates a new reconcile handler.
func NewReconcileHandler(r *reconciler.Reconciler, repo storage.Repository, logger *slog.Logger) *ReconcileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileHandler{reconciler: r, repo: repo, logger: logger}
}

// Reconcile handles POST /api/reconcile.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invalid request body: "+err.Error()))
		return
	}

	started := time.Now().UTC()
	report := h.reconciler.Reconcile(req.Transactions, req.Attachments)

	response := dto.ReconcileResponse{Report: report}

	if !req.DryRun {
		run, outcomes := storage.NewRunFromReport(report, started, false)
		if err := h.repo.SaveRun(run, outcomes); err != nil {
			h.logger.Error("failed to persist reconciliation run", "error", err)
			c.JSON(http.StatusInternalServerError, dto.InternalError())
			return
		}
		response.RunID = run.ID
	}

	h.logger.Info("reconciliation complete",
		"transactions", report.Summary.TotalTransactions,
		"matched", report.Summary.MatchedTransactions,
		"unmatched", report.Summary.UnmatchedTransactions,
		"dry_run", req.DryRun,
	)

	c.JSON(http.StatusOK, response)
}
