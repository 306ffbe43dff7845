package scholarship_test

import (
	"testing"

	"go-feeledger/internal/scholarship"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func ptr[T any](v T) *T { return &v }

var (
	tuition   = "c-tuition"
	transport = "c-transport"
	exam      = "c-exam"
)

func lines() []scholarship.LineItem {
	return []scholarship.LineItem{
		{ComponentID: tuition, Amount: 10000},
		{ComponentID: transport, Amount: 3000},
		{ComponentID: exam, Amount: 1001},
	}
}

func TestApply_NoGrants(t *testing.T) {
	res := scholarship.Apply(lines(), nil)

	assert.Equal(t, int64(14001), res.GrossAmount)
	assert.Equal(t, int64(0), res.ScholarshipAmount)
	assert.Equal(t, int64(14001), res.NetAmount)
	for _, l := range res.Lines {
		assert.Equal(t, l.OriginalAmount, l.AdjustedAmount)
		assert.False(t, l.Waived)
	}
}

func TestApply_WaiverThenPercentageOnRemainder(t *testing.T) {
	grants := []scholarship.Scholarship{
		{Name: "Merit 10%", DiscountType: scholarship.DiscountPercentage, Value: decimal.NewFromInt(10)},
		{Name: "Bus waiver", DiscountType: scholarship.DiscountComponentWaiver, WaivedComponentIDs: datatypes.NewJSONSlice([]string{transport})},
	}

	res := scholarship.Apply(lines(), grants)

	// base after waiver = 10000 + 1001 = 11001; 10% = 1100.1 -> 1100
	assert.Equal(t, int64(3000), res.WaivedAmount)
	assert.Equal(t, int64(1100), res.DiscountAmount)
	assert.Equal(t, int64(4100), res.ScholarshipAmount)
	assert.Equal(t, int64(9901), res.NetAmount)

	waived := res.Lines[1]
	assert.True(t, waived.Waived)
	assert.Equal(t, int64(0), waived.AdjustedAmount)
	assert.Equal(t, int64(3000), waived.OriginalAmount)
	assert.Equal(t, "Bus waiver", *waived.WaiverReason)
}

func TestApply_PercentageRoundsHalfUp(t *testing.T) {
	items := []scholarship.LineItem{{ComponentID: tuition, Amount: 1005}}
	grants := []scholarship.Scholarship{
		{Name: "Half", DiscountType: scholarship.DiscountPercentage, Value: decimal.NewFromInt(50)},
	}

	res := scholarship.Apply(items, grants)

	// 502.5 -> 503
	assert.Equal(t, int64(503), res.DiscountAmount)
	assert.Equal(t, int64(502), res.NetAmount)
}

func TestApply_FixedCappedAtMaxAmount(t *testing.T) {
	grants := []scholarship.Scholarship{
		{Name: "Sports", DiscountType: scholarship.DiscountFixed, Value: decimal.NewFromInt(5000), MaxAmount: ptr(int64(2000))},
	}

	res := scholarship.Apply(lines(), grants)

	assert.Equal(t, int64(2000), res.DiscountAmount)
	assert.Equal(t, int64(12001), res.NetAmount)
	assert.False(t, res.ClampedToZero)
}

func TestApply_DiscountsSumCappedAtBase(t *testing.T) {
	grants := []scholarship.Scholarship{
		{Name: "Full merit", DiscountType: scholarship.DiscountPercentage, Value: decimal.NewFromInt(80)},
		{Name: "Hardship", DiscountType: scholarship.DiscountFixed, Value: decimal.NewFromInt(9000)},
	}

	res := scholarship.Apply(lines(), grants)

	assert.Equal(t, int64(14001), res.DiscountAmount)
	assert.Equal(t, int64(0), res.NetAmount)
	assert.True(t, res.ClampedToZero)
}

func TestApply_EverythingWaived(t *testing.T) {
	grants := []scholarship.Scholarship{
		{Name: "Full waiver", DiscountType: scholarship.DiscountComponentWaiver, WaivedComponentIDs: datatypes.NewJSONSlice([]string{tuition, transport, exam})},
		{Name: "Merit", DiscountType: scholarship.DiscountPercentage, Value: decimal.NewFromInt(10)},
	}

	res := scholarship.Apply(lines(), grants)

	assert.Equal(t, int64(14001), res.WaivedAmount)
	assert.Equal(t, int64(0), res.DiscountAmount)
	assert.Equal(t, int64(0), res.NetAmount)
	assert.False(t, res.ClampedToZero)
}

func TestApply_NetNeverNegative(t *testing.T) {
	grants := []scholarship.Scholarship{
		{Name: "Odd", DiscountType: scholarship.DiscountFixed, Value: decimal.NewFromInt(1_000_000)},
	}

	res := scholarship.Apply(lines(), grants)

	assert.Equal(t, int64(0), res.NetAmount)
	assert.True(t, res.ClampedToZero)
	assert.Equal(t, res.GrossAmount, res.ScholarshipAmount+res.NetAmount)
}
