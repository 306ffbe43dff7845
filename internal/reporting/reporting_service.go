package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-feeledger/internal/academic"
	reportingerrors "go-feeledger/internal/reporting/errors"
	"go-feeledger/internal/tenant"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const DefaultCacheTTL = 5 * time.Minute

//go:generate mockgen -source=reporting_service.go -destination=mock/reporting_service_mock.go -package=mock
type Service interface {
	FeeCollection(ctx context.Context, tn tenant.Tenant, sessionID string) (FeeCollectionResponse, error)
	InvalidateFeeCollection(ctx context.Context, tn tenant.Tenant) error
}

type service struct {
	repo     Repository
	academic academic.Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	ttl      time.Duration
	logger   *zap.Logger
}

// NewService builds the reporting service. A nil rdb disables caching.
func NewService(repo Repository, academicRepo academic.Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("reporting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporting.service")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:     repo,
		academic: academicRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		ttl:      ttl,
		logger:   l,
	}
}

func FeeCollectionKey(orgID, branchID, sessionID string) string {
	return fmt.Sprintf("reports:fee_collection:%s:%s:%s", orgID, branchID, sessionID)
}

func (s *service) FeeCollection(ctx context.Context, tn tenant.Tenant, sessionID string) (FeeCollectionResponse, error) {
	if err := tn.Validate(); err != nil {
		return FeeCollectionResponse{}, err
	}

	cacheKey := FeeCollectionKey(tn.OrgID, tn.BranchID, sessionID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var resp FeeCollectionResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("fee collection cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		if _, err := s.academic.FindSession(ctx, tn.OrgID, sessionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, reportingerrors.ErrSessionNotFound
			}
			return nil, err
		}

		rows, err := s.repo.FeeCollection(ctx, tn.OrgID, tn.BranchID, sessionID)
		if err != nil {
			return nil, err
		}

		resp := summarize(sessionID, rows)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(data), s.ttl).Err(); err != nil {
					s.logger.Warn("fee collection cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return FeeCollectionResponse{}, err
	}

	return v.(FeeCollectionResponse), nil
}

// InvalidateFeeCollection drops every cached session report of the tenant's branch.
func (s *service) InvalidateFeeCollection(ctx context.Context, tn tenant.Tenant) error {
	if s.rdb == nil {
		return nil
	}

	pattern := FeeCollectionKey(tn.OrgID, tn.BranchID, "*")
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, invalidateScanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			s.logger.Debug("fee collection cache invalidated",
				zap.String("org_id", tn.OrgID),
				zap.String("branch_id", tn.BranchID),
				zap.Int("keys", len(keys)),
			)
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

const invalidateScanCount = 100

func summarize(sessionID string, rows []BatchCollection) FeeCollectionResponse {
	resp := FeeCollectionResponse{
		SessionID: sessionID,
		Batches:   make([]BatchCollectionResponse, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Batches = append(resp.Batches, BatchCollectionResponse{
			BatchID:      r.BatchID,
			BatchName:    r.BatchName,
			StudentCount: r.StudentCount,
			TotalNet:     r.TotalNet,
			TotalPaid:    r.TotalPaid,
			Outstanding:  r.TotalNet - r.TotalPaid,
		})
		resp.StudentCount += r.StudentCount
		resp.TotalNet += r.TotalNet
		resp.TotalPaid += r.TotalPaid
	}
	resp.Outstanding = resp.TotalNet - resp.TotalPaid
	return resp
}
