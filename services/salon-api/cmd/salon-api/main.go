package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/cvapp9594-svg/salao225/libs/config"
	"github.com/cvapp9594-svg/salao225/libs/db"
	"github.com/cvapp9594-svg/salao225/libs/httpx"
	"github.com/cvapp9594-svg/salao225/libs/kafkax"
	otelx "github.com/cvapp9594-svg/salao225/libs/otel"
	"github.com/cvapp9594-svg/salao225/libs/runtime"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/booking"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/catalog"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/handlers"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/ledger"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/outbox"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/reminder"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/session"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/sitecfg"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/staff"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/storage"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/whatsapp"
)

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func adminPasswordHash(logger *slog.Logger) []byte {
	if raw := config.String("ADMIN_PASSWORD_HASH", ""); raw != "" {
		return []byte(raw)
	}
	password := config.String("ADMIN_PASSWORD", "adminsalao")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	if password == "adminsalao" {
		logger.Warn("running with the default admin password; set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}
	return hash
}

func newSender(logger *slog.Logger) whatsapp.Sender {
	url := config.String("WHATSAPP_WEBHOOK_URL", "")
	if strings.TrimSpace(url) == "" {
		logger.Info("whatsapp webhook not configured; outbound hand-off disabled")
		return whatsapp.NewNoopSender()
	}
	return whatsapp.NewWebhookSender(url, config.String("WHATSAPP_WEBHOOK_TOKEN", ""))
}

func main() {
	service := config.String("SERVICE_NAME", "salon-api")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	if err := storage.Migrate(ctx, pool); err != nil {
		logger.Error("migration failed", "err", err)
		panic(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: config.String("REDIS_ADDR", "localhost:6379"),
	})
	defer rdb.Close()

	catalogStore := catalog.NewStore(pool, logger)
	staffDir := staff.NewDirectory(pool, logger)
	settingsStore := sitecfg.NewStore(pool, logger)
	ledgerRepo := ledger.NewRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: config.Duration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		BatchSize: config.Int("OUTBOX_BATCH_SIZE", 50),
	})
	go outboxPublisher.Run(ctx)

	sender := newSender(logger)
	bookingService := booking.NewService(ledgerRepo, outboxRepo, sender, logger)
	registry := booking.NewRegistry(config.Duration("BOOKING_SESSION_TTL", 30*time.Minute))
	dispatcher := reminder.NewDispatcher(ledgerRepo, outboxRepo, sender, logger)
	sessions := session.NewStore(rdb, config.Duration("ADMIN_SESSION_TTL", 12*time.Hour))

	publicHandler := handlers.NewPublicHandler(catalogStore, staffDir, settingsStore)
	bookingHandler := handlers.NewBookingHandler(registry, bookingService, catalogStore, staffDir, settingsStore)
	authHandler := handlers.NewAuthHandler(sessions, config.String("ADMIN_USERNAME", "admin"), adminPasswordHash(logger), logger)
	adminHandler := handlers.NewAdminHandler(ledgerRepo, outboxRepo, catalogStore, staffDir, settingsStore, dispatcher, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)

	rateLimiter := httpx.NewRedisRateLimiter(rdb,
		config.Int("PUBLIC_RATE_LIMIT", 60),
		config.Duration("PUBLIC_RATE_WINDOW", time.Minute),
		service,
	)
	limited := func(h http.HandlerFunc) http.Handler {
		return rateLimiter.Middleware(logger, true)(h)
	}

	mux.Handle("/api/v1/public/services", limited(publicHandler.Services))
	mux.Handle("/api/v1/public/professionals", limited(publicHandler.Professionals))
	mux.Handle("/api/v1/public/settings", limited(publicHandler.Settings))
	mux.Handle("/api/v1/public/booking", limited(bookingHandler.State))
	mux.Handle("/api/v1/public/booking/toggle", limited(bookingHandler.Toggle))
	mux.Handle("/api/v1/public/booking/selection", limited(bookingHandler.Selection))
	mux.Handle("/api/v1/public/booking/details", limited(bookingHandler.Details))
	mux.Handle("/api/v1/public/booking/checkout", limited(bookingHandler.Checkout))
	mux.Handle("/api/v1/public/booking/submit", limited(bookingHandler.Submit))
	mux.Handle("/api/v1/public/booking/reset", limited(bookingHandler.Reset))

	// login gets its own per-process limiter: credential guessing should be
	// throttled even when Redis is down, so no fail-open here
	loginLimiter := httpx.NewRateLimiter(
		config.Int("LOGIN_RATE_LIMIT", 10),
		config.Duration("LOGIN_RATE_WINDOW", time.Minute),
	).Middleware()
	mux.Handle("/api/v1/admin/login", loginLimiter(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("/api/v1/admin/logout", authHandler.Logout)
	mux.HandleFunc("/api/v1/admin/appointments", authHandler.RequireAdmin(adminHandler.Appointments))
	mux.HandleFunc("/api/v1/admin/schedule", authHandler.RequireAdmin(adminHandler.Schedule))
	mux.HandleFunc("/api/v1/admin/appointments/status", authHandler.RequireAdmin(adminHandler.SetStatus))
	mux.HandleFunc("/api/v1/admin/appointments/delete", authHandler.RequireAdmin(adminHandler.DeleteAppointment))
	mux.HandleFunc("/api/v1/admin/history", authHandler.RequireAdmin(adminHandler.History))
	mux.HandleFunc("/api/v1/admin/dashboard", authHandler.RequireAdmin(adminHandler.Dashboard))
	mux.HandleFunc("/api/v1/admin/sales", authHandler.RequireAdmin(adminHandler.Sales))
	mux.HandleFunc("/api/v1/admin/reminders", authHandler.RequireAdmin(adminHandler.RemindersDue))
	mux.HandleFunc("/api/v1/admin/reminders/send", authHandler.RequireAdmin(adminHandler.SendReminder))
	mux.HandleFunc("/api/v1/admin/services", authHandler.RequireAdmin(adminHandler.UpsertServices))
	mux.HandleFunc("/api/v1/admin/services/delete", authHandler.RequireAdmin(adminHandler.DeleteService))
	mux.HandleFunc("/api/v1/admin/categories", authHandler.RequireAdmin(adminHandler.UpsertCategories))
	mux.HandleFunc("/api/v1/admin/categories/delete", authHandler.RequireAdmin(adminHandler.DeleteCategory))
	mux.HandleFunc("/api/v1/admin/professionals", authHandler.RequireAdmin(adminHandler.UpsertProfessionals))
	mux.HandleFunc("/api/v1/admin/professionals/delete", authHandler.RequireAdmin(adminHandler.DeleteProfessional))
	mux.HandleFunc("/api/v1/admin/settings", authHandler.RequireAdmin(adminHandler.UpdateSettings))

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins:   splitList(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           10 * time.Minute,
		}),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "salon-api")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
