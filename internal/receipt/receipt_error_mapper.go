package receipt

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueReceiptPaymentConstraint = "uq_receipt_payment"

// isPaymentConflict reports that another transaction already issued the receipt for this payment.
func isPaymentConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == uniqueReceiptPaymentConstraint
}
