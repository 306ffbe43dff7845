package scholarship

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type LineItem struct {
	ComponentID string
	Amount      int64
}

type AppliedLine struct {
	ComponentID    string
	OriginalAmount int64
	AdjustedAmount int64
	Waived         bool
	WaiverReason   *string
}

type Result struct {
	Lines             []AppliedLine
	GrossAmount       int64
	WaivedAmount      int64
	DiscountAmount    int64
	ScholarshipAmount int64
	NetAmount         int64
	// ClampedToZero is set when the requested discounts exceeded what was left
	// after waivers and were cut down to it.
	ClampedToZero bool
}

// Apply combines grants over the line items.
//
// Component waivers run first and zero the waived lines. Percentage and fixed
// grants are then computed against the remaining total, each capped at that
// total, and their sum is capped at it as well.
func Apply(items []LineItem, grants []Scholarship) Result {
	res := Result{Lines: make([]AppliedLine, len(items))}

	waivers := make(map[string]string)
	for _, g := range grants {
		if g.DiscountType != DiscountComponentWaiver {
			continue
		}
		for _, id := range g.WaivedComponentIDs {
			if _, ok := waivers[id]; !ok {
				waivers[id] = g.Name
			}
		}
	}

	var base int64
	for i, item := range items {
		line := AppliedLine{
			ComponentID:    item.ComponentID,
			OriginalAmount: item.Amount,
			AdjustedAmount: item.Amount,
		}
		if reason, ok := waivers[item.ComponentID]; ok {
			line.AdjustedAmount = 0
			line.Waived = true
			line.WaiverReason = &reason
			res.WaivedAmount += item.Amount
		}
		res.GrossAmount += item.Amount
		base += line.AdjustedAmount
		res.Lines[i] = line
	}

	var discount, requested int64
	for _, g := range grants {
		d := grantDiscount(g, base)
		requested += d
		discount += min(d, base)
	}
	if requested > base {
		res.ClampedToZero = true
	}
	discount = min(discount, base)

	res.DiscountAmount = discount
	res.ScholarshipAmount = res.WaivedAmount + discount
	res.NetAmount = res.GrossAmount - res.ScholarshipAmount
	if res.NetAmount < 0 {
		res.NetAmount = 0
		res.ClampedToZero = true
	}
	return res
}

func grantDiscount(g Scholarship, base int64) int64 {
	var d int64
	switch g.DiscountType {
	case DiscountPercentage:
		// Round rounds half away from zero, which is half-up for non-negative amounts.
		d = decimal.NewFromInt(base).Mul(g.Value).Div(hundred).Round(0).IntPart()
	case DiscountFixed:
		d = g.Value.Round(0).IntPart()
	default:
		return 0
	}

	if g.MaxAmount != nil && d > *g.MaxAmount {
		d = *g.MaxAmount
	}
	return max(d, 0)
}
