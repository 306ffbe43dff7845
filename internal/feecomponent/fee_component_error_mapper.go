package feecomponent

import (
	"errors"
	"strings"

	feecomponenterrors "go-feeledger/internal/feecomponent/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueComponentNameConstraint = "uq_fee_component_org_name"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return feecomponenterrors.ErrComponentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == uniqueComponentNameConstraint {
			return feecomponenterrors.ErrComponentNameTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueComponentNameConstraint) {
		return feecomponenterrors.ErrComponentNameTaken
	}

	return err
}
