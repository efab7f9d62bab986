package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	cost "rental-billing/internal/cost/domain"
	dashboard "rental-billing/internal/dashboard/domain"
	"rental-billing/internal/observability/metrics"
	payment "rental-billing/internal/payment/domain"
)

// PaymentReader supplies approved payments for aggregation.
type PaymentReader interface {
	ListApproved(ctx context.Context) ([]payment.Payment, error)
}

// CostReader supplies cost records for profit rollups.
type CostReader interface {
	List(ctx context.Context) ([]cost.Cost, error)
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// DashboardHandler serves the financial summary and report exports.
type DashboardHandler struct {
	payments PaymentReader
	costs    CostReader
	clock    Clock
	logger   *log.Logger
}

// NewDashboardHandler constructs a handler.
func NewDashboardHandler(payments PaymentReader, costs CostReader, clock Clock, logger *log.Logger) (*DashboardHandler, error) {
	if payments == nil {
		return nil, errors.New("dashboard handler: nil payment reader")
	}
	if costs == nil {
		return nil, errors.New("dashboard handler: nil cost reader")
	}
	if clock == nil {
		return nil, errors.New("dashboard handler: nil clock")
	}
	return &DashboardHandler{payments: payments, costs: costs, clock: clock, logger: logger}, nil
}

// ServeHTTP handles dashboard routes under /api/v1/dashboard.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/dashboard/summary":
		h.handleSummary(w, r)
	case "/api/v1/dashboard/report.xlsx":
		h.handleExport(w, r, "xlsx")
	case "/api/v1/dashboard/report.pdf":
		h.handleExport(w, r, "pdf")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *DashboardHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, _, err := h.aggregate(r.Context())
	if err != nil {
		h.fail(w, "dashboard summary", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}

func (h *DashboardHandler) handleExport(w http.ResponseWriter, r *http.Request, format string) {
	summary, today, err := h.aggregate(r.Context())
	if err != nil {
		metrics.IncReportExport(format, false)
		h.fail(w, "dashboard export", err)
		return
	}

	var data []byte
	var contentType string
	switch format {
	case "xlsx":
		data, err = BuildFinancialReportXLSX(summary, today)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		data, err = BuildFinancialReportPDF(summary, today)
		contentType = "application/pdf"
	}
	if err != nil {
		metrics.IncReportExport(format, false)
		h.fail(w, "dashboard export", err)
		return
	}
	metrics.IncReportExport(format, true)

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="financial-report-%s.%s"`, today.Format("2006-01-02"), format))
	_, _ = w.Write(data)
}

func (h *DashboardHandler) aggregate(ctx context.Context) (dashboard.FinancialSummary, time.Time, error) {
	payments, err := h.payments.ListApproved(ctx)
	if err != nil {
		return dashboard.FinancialSummary{}, time.Time{}, fmt.Errorf("list approved payments: %w", err)
	}
	costs, err := h.costs.List(ctx)
	if err != nil {
		return dashboard.FinancialSummary{}, time.Time{}, fmt.Errorf("list costs: %w", err)
	}
	today := h.clock.Now()
	return dashboard.Aggregate(payments, costs, today), today, nil
}

func (h *DashboardHandler) fail(w http.ResponseWriter, op string, err error) {
	if h.logger != nil {
		h.logger.Printf("%s error: %v", op, err)
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
