package httpapi

import "net/http"

func (h *Handler) RunSendRemindersJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSendRemindersJob")
	defer span.End()

	summary, err := h.notificationService.SendEventReminders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "send reminders job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	deliveries := make([]deliveryDTO, 0, len(summary.Deliveries))
	for _, d := range summary.Deliveries {
		deliveries = append(deliveries, deliveryToDTO(d))
	}

	h.logger.InfoContext(ctx, "send reminders job finished",
		"events", summary.Events,
		"sent", summary.Sent,
		"failed", summary.Failed,
	)
	writeSuccess(ctx, w, http.StatusOK, reminderSummaryDTO{
		Events:     summary.Events,
		Sent:       summary.Sent,
		Failed:     summary.Failed,
		Deliveries: deliveries,
	})
}
