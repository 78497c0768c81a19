package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/cvapp9594-svg/salao225/libs/config"
	"github.com/cvapp9594-svg/salao225/libs/db"
	"github.com/cvapp9594-svg/salao225/libs/httpx"
	"github.com/cvapp9594-svg/salao225/libs/kafkax"
	otelx "github.com/cvapp9594-svg/salao225/libs/otel"
	"github.com/cvapp9594-svg/salao225/libs/runtime"
	"github.com/cvapp9594-svg/salao225/services/notifier/internal/consumer"
	"github.com/cvapp9594-svg/salao225/services/notifier/internal/gateway"
	"github.com/cvapp9594-svg/salao225/services/notifier/internal/inbox"
	"github.com/cvapp9594-svg/salao225/services/notifier/internal/storage"
)

type reminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	ClientPhone   string `json:"client_phone"`
	Link          string `json:"link"`
	Body          string `json:"body"`
}

type bookedPayload struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceID   string `json:"service_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type statusPayload struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

func main() {
	service := config.String("SERVICE_NAME", "notifier")
	port, err := config.Port("PORT", "8081")
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

	inboxRepo := inbox.NewRepository(pool)
	deliveries := storage.NewRepository(pool)

	var sender gateway.Sender
	webhookURL := config.String("GATEWAY_WEBHOOK_URL", "")
	if strings.TrimSpace(webhookURL) == "" {
		logger.Info("gateway webhook not configured; deliveries recorded only")
		sender = gateway.NewNoopSender()
	} else {
		sender = gateway.NewWebhookSender(webhookURL, config.String("GATEWAY_WEBHOOK_TOKEN", ""))
	}

	deliver := func(ctx context.Context, d storage.Delivery) error {
		d.Status = "sent"
		if err := sender.Send(ctx, d.Recipient, d.Link, d.Body); err != nil {
			logger.Error("delivery failed", "err", err, "appointment_id", d.AppointmentID, "provider", sender.ProviderID())
			d.Status = "failed"
		}
		return deliveries.Insert(ctx, d)
	}

	startConsumer := func(topic string, handler consumer.Handler) {
		if strings.TrimSpace(topic) == "" {
			return
		}
		cfg := consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "notifier"),
			Topic:   topic,
		}
		go consumer.New(logger, inboxRepo, cfg, handler).Run(ctx)
	}

	startConsumer(config.String("KAFKA_TOPIC_REMINDER", "salon.reminder.requested.v1"), func(ctx context.Context, msg kafka.Message) error {
		var payload reminderPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid reminder payload", "err", err)
			return nil
		}
		if payload.AppointmentID == "" || payload.ClientPhone == "" {
			logger.Error("missing reminder fields")
			return nil
		}
		meta := kafkax.ExtractEventMeta(msg)
		return deliver(ctx, storage.Delivery{
			EventID:       meta.EventID,
			EventType:     meta.EventType,
			AppointmentID: payload.AppointmentID,
			Recipient:     payload.ClientPhone,
			Link:          payload.Link,
			Body:          payload.Body,
		})
	})

	startConsumer(config.String("KAFKA_TOPIC_BOOKED", "salon.appointment.booked.v1"), func(ctx context.Context, msg kafka.Message) error {
		var payload bookedPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid booking payload", "err", err)
			return nil
		}
		if payload.ID == "" {
			logger.Error("missing booking id")
			return nil
		}
		body := fmt.Sprintf("Novo agendamento de %s (%s) em %s às %s.",
			payload.ClientName, payload.ClientPhone, payload.Date, payload.Time)
		meta := kafkax.ExtractEventMeta(msg)
		return deliver(ctx, storage.Delivery{
			EventID:       meta.EventID,
			EventType:     meta.EventType,
			AppointmentID: payload.ID,
			Recipient:     config.String("OPERATOR_PHONE", ""),
			Body:          body,
		})
	})

	startConsumer(config.String("KAFKA_TOPIC_STATUS", "salon.appointment.status_changed.v1"), func(ctx context.Context, msg kafka.Message) error {
		var payload statusPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid status payload", "err", err)
			return nil
		}
		meta := kafkax.ExtractEventMeta(msg)
		// audit only, no outbound message
		return deliveries.Insert(ctx, storage.Delivery{
			EventID:       meta.EventID,
			EventType:     meta.EventType,
			AppointmentID: payload.AppointmentID,
			Body:          "status: " + payload.Status,
			Status:        "recorded",
		})
	})

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "notifier")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
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
