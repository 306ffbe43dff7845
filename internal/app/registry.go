package app

import (
	"database/sql"

	"go-feeledger/internal/academic"
	"go-feeledger/internal/batchfee"
	"go-feeledger/internal/config"
	"go-feeledger/internal/feecomponent"
	"go-feeledger/internal/installment"
	"go-feeledger/internal/messaging/kafka"
	"go-feeledger/internal/middleware"
	"go-feeledger/internal/payment"
	"go-feeledger/internal/rbac"
	"go-feeledger/internal/rbac/infra"
	"go-feeledger/internal/receipt"
	"go-feeledger/internal/reporting"
	"go-feeledger/internal/scholarship"
	"go-feeledger/internal/shared/counter"
	"go-feeledger/internal/studentfee"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	academicRepo := academic.NewRepository(gormDB)
	batchFeeRepo := batchfee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	feeComponentRepo := feecomponent.NewRepository(gormDB)
	installmentRepo := installment.NewRepository(gormDB)
	ledgerRepo := batchfee.NewLedgerRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	paymentRepo := payment.NewRepository(gormDB)
	rbacRepo := rbac.NewRepository(gormDB)
	receiptRepo := receipt.NewRepository(gormDB)
	reportingRepo := reporting.NewRepository(gormDB)
	scholarshipRepo := scholarship.NewRepository(gormDB)
	studentFeeRepo := studentfee.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	resolver := feecomponent.NewResolver(feeComponentRepo)
	feeComponentService := feecomponent.NewService(db, feeComponentRepo, logger)
	studentFeeService := studentfee.NewService(db, studentFeeRepo, resolver, scholarshipRepo, academicRepo, logger)
	batchFeeService := batchfee.NewService(db, batchFeeRepo, ledgerRepo, studentFeeRepo, resolver, academicRepo, logger)
	installmentService := installment.NewService(db, installmentRepo, studentFeeRepo, academicRepo,
		installment.Options{DueSoonDays: cfg.DueSoonDays}, logger)
	paymentService := payment.NewService(db, paymentRepo, payment.NewOutboxNotifier(outboxRepo),
		payment.Options{DueSoonDays: cfg.DueSoonDays}, logger)
	receiptService := receipt.NewService(db, receiptRepo, counterRepo, academicRepo, nil, logger)
	reportingService := reporting.NewService(reportingRepo, academicRepo, rdb, cfg.ReportCacheTTL, logger)

	// --- Handlers ---
	batchFeeHandler := batchfee.NewHandler(batchFeeService, logger)
	feeComponentHandler := feecomponent.NewHandler(feeComponentService, logger)
	installmentHandler := installment.NewHandler(installmentService, logger)
	paymentHandler := payment.NewHandler(paymentService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	receiptHandler := receipt.NewHandler(receiptService, logger)
	reportingHandler := reporting.NewHandler(reportingService, logger)
	studentFeeHandler := studentfee.NewHandler(studentFeeService, logger)

	// --- Routes Registration ---
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(20), 40),
	)
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	paymentGuards := []gin.HandlerFunc{
		middleware.ExtractUserID(),
		middleware.RateLimitByUser(rate.Limit(5), 10),
		middleware.Idempotency(rdb, middleware.DefaultIdempotencyTTL),
	}

	api := router.Group("/api/v1")
	{
		feecomponent.RegisterRoutes(api, feeComponentHandler, auth, rbacService)
		batchfee.RegisterRoutes(api, batchFeeHandler, auth, rbacService)
		studentfee.RegisterRoutes(api, studentFeeHandler, auth, rbacService)
		installment.RegisterRoutes(api, installmentHandler, auth, rbacService)
		payment.RegisterRoutes(api, paymentHandler, auth, rbacService, paymentGuards...)
		receipt.RegisterRoutes(api, receiptHandler, auth, rbacService)
		reporting.RegisterRoutes(api, reportingHandler, auth, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, auth, rbacService)
	}

	return nil
}
