package installment

import (
	"time"

	installmenterrors "go-feeledger/internal/installment/errors"

	"github.com/shopspring/decimal"
)

type PlanKind string

const (
	PlanPercentage PlanKind = "percentage"
	PlanExplicit   PlanKind = "explicit"
)

var hundred = decimal.NewFromInt(100)

type PercentageEntry struct {
	Percentage decimal.Decimal `json:"percentage"`
	OffsetDays int             `json:"offset_days"`
}

type ExplicitEntry struct {
	Amount  int64     `json:"amount"`
	DueDate time.Time `json:"due_date"`
}

// Plan describes how a net amount is spread over installments. It is stored
// on the fee structure once a schedule has been generated from it.
type Plan struct {
	Kind        PlanKind          `json:"kind"`
	Percentages []PercentageEntry `json:"percentages,omitempty"`
	Explicit    []ExplicitEntry   `json:"explicit,omitempty"`
}

type ScheduledInstallment struct {
	Number  int
	Amount  int64
	DueDate time.Time
}

// BuildSchedule splits net according to plan. The installments always add up
// to net exactly and none of them is zero.
func BuildSchedule(net int64, sessionStart time.Time, plan Plan) ([]ScheduledInstallment, error) {
	if net <= 0 {
		return nil, installmenterrors.ErrZeroNetAmount
	}

	var (
		schedule []ScheduledInstallment
		err      error
	)
	switch plan.Kind {
	case PlanPercentage:
		schedule, err = splitByPercentage(net, sessionStart, plan.Percentages)
	case PlanExplicit:
		schedule, err = takeExplicit(net, plan.Explicit)
	default:
		return nil, installmenterrors.ErrEmptyPlan
	}
	if err != nil {
		return nil, err
	}

	for _, inst := range schedule {
		if inst.Amount <= 0 {
			return nil, installmenterrors.ErrZeroInstallment.WithDetails(map[string]int{"installment_number": inst.Number})
		}
	}
	return schedule, nil
}

func splitByPercentage(net int64, start time.Time, entries []PercentageEntry) ([]ScheduledInstallment, error) {
	if len(entries) == 0 {
		return nil, installmenterrors.ErrEmptyPlan
	}

	sum := decimal.Zero
	for _, e := range entries {
		if !e.Percentage.IsPositive() {
			return nil, installmenterrors.ErrNonPositivePercentage
		}
		if e.OffsetDays < 0 {
			return nil, installmenterrors.ErrNegativeOffset
		}
		sum = sum.Add(e.Percentage)
	}
	if !sum.Equal(hundred) {
		return nil, installmenterrors.ErrPercentagesNotHundred.WithDetails(map[string]string{"sum": sum.String()})
	}

	schedule := make([]ScheduledInstallment, len(entries))
	netDec := decimal.NewFromInt(net)
	var allocated int64
	for i, e := range entries {
		amount := net - allocated
		if i < len(entries)-1 {
			amount = netDec.Mul(e.Percentage).Div(hundred).Floor().IntPart()
		}
		allocated += amount

		schedule[i] = ScheduledInstallment{
			Number:  i + 1,
			Amount:  amount,
			DueDate: start.AddDate(0, 0, e.OffsetDays),
		}
	}
	return schedule, nil
}

func takeExplicit(net int64, entries []ExplicitEntry) ([]ScheduledInstallment, error) {
	if len(entries) == 0 {
		return nil, installmenterrors.ErrEmptyPlan
	}

	schedule := make([]ScheduledInstallment, len(entries))
	var sum int64
	for i, e := range entries {
		sum += e.Amount
		schedule[i] = ScheduledInstallment{Number: i + 1, Amount: e.Amount, DueDate: e.DueDate}
	}
	if sum != net {
		return nil, installmenterrors.ErrExplicitSumMismatch.WithDetails(map[string]int64{
			"net_amount": net,
			"sum":        sum,
		})
	}
	return schedule, nil
}
