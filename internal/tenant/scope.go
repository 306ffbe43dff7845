package tenant

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is the authoritative filter handed down by the auth layer.
type Tenant struct {
	OrgID    string
	BranchID string
}

var ErrInvalidTenant = apperror.New(
	apperror.CodeUnauthorized,
	"invalid tenant scope",
	http.StatusUnauthorized,
)

func (t Tenant) Validate() error {
	if _, err := uuid.Parse(t.OrgID); err != nil {
		return ErrInvalidTenant
	}
	if _, err := uuid.Parse(t.BranchID); err != nil {
		return ErrInvalidTenant
	}
	return nil
}

func (t Tenant) OrgUUID() uuid.UUID {
	id, _ := uuid.Parse(t.OrgID)
	return id
}

func (t Tenant) BranchUUID() uuid.UUID {
	id, _ := uuid.Parse(t.BranchID)
	return id
}

// FromGin reads the scope set by middleware.AuthMiddleware.
func FromGin(c *gin.Context) Tenant {
	return Tenant{
		OrgID:    c.GetString("org_id"),
		BranchID: c.GetString("branch_id"),
	}
}

func Scope(orgID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("org_id = ?", orgID)
	}
}

// TableScope qualifies the org column, for queries that join several org-owned tables.
func TableScope(table, orgID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".org_id = ?", orgID)
	}
}

func BranchScope(branchID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("branch_id = ?", branchID)
	}
}
