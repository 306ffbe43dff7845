package rbac

import (
	"context"
	"sync"
	"time"

	"go-feeledger/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// policyTTL bounds how long a loaded org policy is trusted before it is read again.
const policyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadOrgPolicy(ctx context.Context, orgID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListRoles(ctx context.Context, orgID string) ([]domain.RoleResponse, error)
	ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	loadedAt map[string]time.Time
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		loadedAt: make(map[string]time.Time),
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) LoadOrgPolicy(ctx context.Context, orgID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadOrgPolicyUnlocked(ctx, orgID)
}

// loadOrgPolicyUnlocked replaces the policies of one org domain and leaves the others untouched.
func (s *service) loadOrgPolicyUnlocked(ctx context.Context, orgID string) error {
	userRoles, err := s.repo.GetUserRoles(ctx, orgID)
	if err != nil {
		return err
	}
	rolePerms, err := s.repo.GetRolePermissions(ctx, orgID)
	if err != nil {
		return err
	}

	if _, err := s.enforcer.RemoveFilteredGroupingPolicy(2, orgID); err != nil {
		return err
	}
	if _, err := s.enforcer.RemoveFilteredPolicy(1, orgID); err != nil {
		return err
	}

	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.RoleID, orgID); err != nil {
			return err
		}
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, orgID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt[orgID] = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.String("org_id", orgID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loaded, ok := s.loadedAt[req.OrgID]; !ok || s.now().Sub(loaded) > policyTTL {
		if err := s.loadOrgPolicyUnlocked(context.Background(), req.OrgID); err != nil {
			return false, err
		}
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.OrgID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	if !allowed {
		s.logger.Info("rbac denied",
			zap.String("user_id", req.UserID),
			zap.String("org_id", req.OrgID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Strings("roles", s.enforcer.GetRolesForUserInDomain(req.UserID, req.OrgID)),
		)
	}
	return allowed, nil
}

func (s *service) ListRoles(ctx context.Context, orgID string) ([]domain.RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx, orgID)
	if err != nil {
		return nil, err
	}
	perms, err := s.repo.GetRolePermissions(ctx, orgID)
	if err != nil {
		return nil, err
	}

	byRole := lo.GroupBy(perms, func(p RolePermissionRow) string { return p.RoleID })
	return lo.Map(roles, func(r RoleRow, _ int) domain.RoleResponse {
		return domain.RoleResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Permissions: lo.Map(byRole[r.ID], func(p RolePermissionRow, _ int) string {
				return p.Resource + ":" + p.Action
			}),
		}
	}), nil
}

func (s *service) ListPermissions(ctx context.Context) ([]domain.PermissionResponse, error) {
	perms, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(perms, func(p PermissionRow, _ int) domain.PermissionResponse {
		return domain.PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}), nil
}
