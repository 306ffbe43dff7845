package feecomponent

import (
	"context"
	"database/sql"

	feecomponenterrors "go-feeledger/internal/feecomponent/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Resolver checks line-item component references for the structure builders.
//
//go:generate mockgen -source=fee_component_resolver.go -destination=mock/fee_component_resolver_mock.go -package=mock
type Resolver interface {
	// ResolveActive returns the referenced components keyed by canonical id, or
	// ErrInvalidComponents listing every id that is malformed, foreign or inactive.
	ResolveActive(ctx context.Context, tx *sql.Tx, orgID string, ids []string) (map[string]FeeComponent, error)
}

type resolver struct {
	repo Repository
}

func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

type InvalidComponentsDetails struct {
	InvalidComponentIDs []string `json:"invalid_component_ids"`
}

func (r *resolver) ResolveActive(ctx context.Context, tx *sql.Tx, orgID string, ids []string) (map[string]FeeComponent, error) {
	var (
		invalid   []string
		canonical []string
	)
	for _, raw := range lo.Uniq(ids) {
		id, err := uuid.Parse(raw)
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		canonical = append(canonical, id.String())
	}
	canonical = lo.Uniq(canonical)

	found, err := r.repo.WithTx(tx).FindActiveByIDs(ctx, orgID, canonical)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(found, func(c FeeComponent) string { return c.ID.String() })
	invalid = append(invalid, lo.Filter(canonical, func(id string, _ int) bool {
		_, ok := byID[id]
		return !ok
	})...)

	if len(invalid) > 0 {
		return nil, feecomponenterrors.ErrInvalidComponents.WithDetails(InvalidComponentsDetails{
			InvalidComponentIDs: invalid,
		})
	}

	return byID, nil
}
