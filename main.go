package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"rental-billing/internal/auth"
	billingapp "rental-billing/internal/billing/application"
	billinghttp "rental-billing/internal/billing/interfaces/http"
	billingnotify "rental-billing/internal/billing/notify"
	contractrepo "rental-billing/internal/contract/infrastructure/postgres"
	costrepo "rental-billing/internal/cost/infrastructure/postgres"
	dashboardhttp "rental-billing/internal/dashboard/interfaces"
	"rental-billing/internal/observability/metrics"
	paymentrepo "rental-billing/internal/payment/infrastructure/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init()

	billingCfg, err := billingapp.LoadConfig()
	if err != nil {
		logger.Fatalf("billing config error: %v", err)
	}

	contracts := contractrepo.NewContractRepository(db)
	payments := paymentrepo.NewPaymentRepository(db)
	costs := costrepo.NewCostRepository(db)

	evaluation, err := billingapp.NewEvaluationService(contracts, payments,
		billingapp.WithWorkers(billingCfg.Workers),
	)
	if err != nil {
		logger.Fatalf("evaluation service error: %v", err)
	}

	var reminder billingapp.ReminderNotifier
	if billingCfg.WebhookURL != "" {
		channel, err := billingnotify.NewWebhookChannel(billingCfg.WebhookURL)
		if err != nil {
			logger.Fatalf("reminder webhook error: %v", err)
		}
		tpl, err := billingnotify.NewTemplate(billingCfg.Template)
		if err != nil {
			logger.Fatalf("reminder template error: %v", err)
		}
		notifier, err := billingnotify.NewNotifier(channel, tpl, logger,
			billingnotify.WithCooldown(billingCfg.Cooldown),
			billingnotify.WithRequestTimeout(billingCfg.RequestTimeout),
		)
		if err != nil {
			logger.Fatalf("reminder notifier error: %v", err)
		}
		reminder = notifier
	}

	scheduler := billingapp.NewScheduler(evaluation, reminder, billingCfg.Schedule.DailyAt, logger)
	go scheduler.Start(context.Background())

	overviewHandler, err := billinghttp.NewOverviewHandler(evaluation, logger)
	if err != nil {
		logger.Fatalf("overview handler error: %v", err)
	}
	dashboardHandler, err := dashboardhttp.NewDashboardHandler(payments, costs, billingapp.SystemClock{}, logger)
	if err != nil {
		logger.Fatalf("dashboard handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/billing/overview", overviewHandler)
	mux.Handle("/api/v1/dashboard/summary", dashboardHandler)
	mux.Handle("/api/v1/dashboard/report.xlsx", dashboardHandler)
	mux.Handle("/api/v1/dashboard/report.pdf", dashboardHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		JWTSecret:   getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}
