package httpapi

import (
	"net/http"
)

func (h *Handler) RunReconcileJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcileJob")
	defer span.End()

	report, err := h.reconcileService.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reconcileReportDTO{
		Scanned:    report.Scanned,
		Updated:    report.Updated,
		Failed:     report.Failed,
		DurationMS: report.Duration.Milliseconds(),
	})
}
