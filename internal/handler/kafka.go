package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cardbazaar/order-service/internal/config"
	"github.com/cardbazaar/order-service/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

// kafkaHandler consumes storefront checkout events and feeds them to the
// order lifecycle service. Events that cannot be handled go to the DLQ so
// the partition never stalls on a poison message.
type kafkaHandler struct {
	dlq       *kafka.Writer
	reader    *kafka.Reader
	logger    *slog.Logger
	validate  *validator.Validate
	submitter OrderSubmitter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, submitter OrderSubmitter) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:  validator.New(),
		submitter: submitter,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		// Submission already retries transient store failures internally.
		if err := h.handleCheckout(ctx, m); err != nil {
			checkoutsFailed.Inc()
			h.logger.Error("failed to handle checkout event", slog.Any("error", err))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			checkoutsDLQ.Inc()
		} else {
			checkoutsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleCheckout(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	checkoutsInProgress.Inc()
	defer func() {
		checkoutsInProgress.Dec()
		checkoutProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	var req SubmitOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal checkout event: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid checkout event: %w", err)
	}

	_, err := h.submitter.SubmitOrder(ctx, SubmitOrderToEntity(req))
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
