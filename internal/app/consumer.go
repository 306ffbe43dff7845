package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-feeledger/internal/academic"
	"go-feeledger/internal/config"
	"go-feeledger/internal/events"
	"go-feeledger/internal/messaging/kafka/consumer"
	"go-feeledger/internal/receipt"
	"go-feeledger/internal/reporting"
	"go-feeledger/internal/shared/connection"
	"go-feeledger/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer issues receipts for payment events and refreshes cached reports until interrupted.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	academicRepo := academic.NewRepository(gormDB)
	reportingService := reporting.NewService(
		reporting.NewRepository(gormDB),
		academicRepo,
		redisClient,
		cfg.ReportCacheTTL,
		logger,
	)

	receiptService := receipt.NewService(
		sqlDB,
		receipt.NewRepository(gormDB),
		counter.NewRepository(gormDB),
		academicRepo,
		nil,
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.PaymentRecordedTopic,
		GroupID:        cfg.ConsumerGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumePaymentRecorded(ctx, reader, receiptService, reportingService, logger)

	logger.Info("consumer shut down")
	return nil
}
