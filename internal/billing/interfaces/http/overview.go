package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	app "rental-billing/internal/billing/application"
	billing "rental-billing/internal/billing/domain"
	"rental-billing/internal/observability/metrics"
)

// OverviewHandler serves the per-contract billing status list.
type OverviewHandler struct {
	service *app.EvaluationService
	logger  *log.Logger
}

// NewOverviewHandler constructs a handler.
func NewOverviewHandler(service *app.EvaluationService, logger *log.Logger) (*OverviewHandler, error) {
	if service == nil {
		return nil, errors.New("overview handler: nil service")
	}
	return &OverviewHandler{service: service, logger: logger}, nil
}

type overviewRow struct {
	ContractID    string `json:"contract_id"`
	ClientID      string `json:"client_id"`
	AnchorDate    string `json:"anchor_date,omitempty"`
	NextDueDate   string `json:"next_due_date,omitempty"`
	DaysRemaining int    `json:"days_remaining"`
	DaysLate      int    `json:"days_late,omitempty"`
	Status        string `json:"status,omitempty"`
	PeriodPaid    bool   `json:"period_paid"`
	Error         string `json:"error,omitempty"`
}

// ServeHTTP handles GET /api/v1/billing/overview, optionally filtered by
// ?status=overdue|due_today|pending.
func (h *OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	results, err := h.service.EvaluateAll(r.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("billing overview error: %v", err)
		}
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}

	filter := billing.Status(r.URL.Query().Get("status"))
	rows := make([]overviewRow, 0, len(results))
	counts := make(map[string]int)
	for _, result := range results {
		if result.Err == nil {
			counts[string(result.Cycle.Status)]++
		}
		if filter != "" && (result.Err != nil || result.Cycle.Status != filter) {
			continue
		}
		rows = append(rows, toRow(result))
	}
	metrics.SetContractStatusCounts(counts)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"contracts": rows})
}

func toRow(result app.Result) overviewRow {
	row := overviewRow{
		ContractID: result.Contract.ID,
		ClientID:   result.Contract.ClientID,
	}
	if result.Err != nil {
		row.Error = result.Err.Error()
		return row
	}
	row.AnchorDate = result.Cycle.AnchorDate.Format("2006-01-02")
	row.NextDueDate = result.Cycle.NextDueDate.Format("2006-01-02")
	row.DaysRemaining = result.Cycle.DaysRemaining
	row.DaysLate = result.Cycle.DaysLate()
	row.Status = string(result.Cycle.Status)
	row.PeriodPaid = result.PeriodPaid
	return row
}
