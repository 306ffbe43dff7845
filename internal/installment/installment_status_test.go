package installment_test

import (
	"testing"

	"go-feeledger/internal/installment"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	due := date("2025-06-30")

	tests := []struct {
		name   string
		amount int64
		paid   int64
		today  string
		want   string
	}{
		{"fully paid early", 3000, 3000, "2025-04-01", installment.StatusPaid},
		{"fully paid late", 3000, 3000, "2025-08-01", installment.StatusPaid},
		{"partial before due", 3000, 1000, "2025-04-01", installment.StatusPartial},
		{"partial after due stays partial", 3000, 1000, "2025-08-01", installment.StatusPartial},
		{"unpaid after due", 3000, 0, "2025-07-01", installment.StatusOverdue},
		{"unpaid on due date", 3000, 0, "2025-06-30", installment.StatusDue},
		{"unpaid at window edge", 3000, 0, "2025-06-23", installment.StatusDue},
		{"unpaid just outside window", 3000, 0, "2025-06-22", installment.StatusUpcoming},
		{"unpaid far ahead", 3000, 0, "2025-04-01", installment.StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := installment.DeriveStatus(tt.amount, tt.paid, due, date(tt.today), installment.DefaultDueSoonDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsOverdue(t *testing.T) {
	due := date("2025-06-30")

	assert.True(t, installment.IsOverdue(3000, 1000, due, date("2025-07-01")))
	assert.True(t, installment.IsOverdue(3000, 0, due, date("2025-07-01")))
	assert.False(t, installment.IsOverdue(3000, 3000, due, date("2025-07-01")))
	assert.False(t, installment.IsOverdue(3000, 0, due, date("2025-06-30")))
}
