package studentfee

import (
	"errors"

	studentfeeerrors "go-feeledger/internal/studentfee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueStudentSessionConstraint = "uq_student_fee_structure_session"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return studentfeeerrors.ErrStructureNotFound
	}

	if IsStudentSessionConflict(err) {
		return studentfeeerrors.ErrStructureExists
	}

	return err
}

// IsStudentSessionConflict reports a unique violation on (student, session).
func IsStudentSessionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == uniqueStudentSessionConstraint
}
