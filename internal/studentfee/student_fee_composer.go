package studentfee

import (
	"go-feeledger/internal/scholarship"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
)

const clampedRemark = "net amount clamped to zero by scholarship policy"

type TemplateItem struct {
	ComponentID uuid.UUID
	Amount      int64
}

// Template is the part of a batch fee structure a student structure is derived from.
type Template struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Items     []TemplateItem
}

// FromTemplate derives a student structure from a batch template. Template
// amounts are copied as-is and no scholarship is applied.
func FromTemplate(tn tenant.Tenant, studentID uuid.UUID, tmpl Template, createdBy *uuid.UUID) StudentFeeStructure {
	templateID := tmpl.ID
	structure := StudentFeeStructure{
		ID:                  uuid.New(),
		OrgID:               tn.OrgUUID(),
		BranchID:            tn.BranchUUID(),
		StudentID:           studentID,
		SessionID:           tmpl.SessionID,
		Source:              SourceBatchDefault,
		BatchFeeStructureID: &templateID,
		CreatedBy:           createdBy,
		LineItems:           make([]StudentFeeLineItem, len(tmpl.Items)),
	}

	for i, item := range tmpl.Items {
		structure.LineItems[i] = StudentFeeLineItem{
			ID:                    uuid.New(),
			StudentFeeStructureID: structure.ID,
			FeeComponentID:        item.ComponentID,
			OriginalAmount:        item.Amount,
			AdjustedAmount:        item.Amount,
		}
		structure.GrossAmount += item.Amount
	}
	structure.NetAmount = structure.GrossAmount

	return structure
}

// Compose builds a custom structure and applies the student's scholarship grants.
// The returned flag reports whether discounts had to be clamped.
func Compose(
	tn tenant.Tenant,
	studentID, sessionID uuid.UUID,
	items []TemplateItem,
	grants []scholarship.Scholarship,
	remarks *string,
	createdBy *uuid.UUID,
) (StudentFeeStructure, bool) {
	lines := make([]scholarship.LineItem, len(items))
	for i, item := range items {
		lines[i] = scholarship.LineItem{ComponentID: item.ComponentID.String(), Amount: item.Amount}
	}
	applied := scholarship.Apply(lines, grants)

	structure := StudentFeeStructure{
		ID:                uuid.New(),
		OrgID:             tn.OrgUUID(),
		BranchID:          tn.BranchUUID(),
		StudentID:         studentID,
		SessionID:         sessionID,
		Source:            SourceCustom,
		GrossAmount:       applied.GrossAmount,
		ScholarshipAmount: applied.ScholarshipAmount,
		NetAmount:         applied.NetAmount,
		Remarks:           remarks,
		CreatedBy:         createdBy,
		LineItems:         make([]StudentFeeLineItem, len(applied.Lines)),
	}

	for i, line := range applied.Lines {
		structure.LineItems[i] = StudentFeeLineItem{
			ID:                    uuid.New(),
			StudentFeeStructureID: structure.ID,
			FeeComponentID:        items[i].ComponentID,
			OriginalAmount:        line.OriginalAmount,
			AdjustedAmount:        line.AdjustedAmount,
			IsWaived:              line.Waived,
			WaiverReason:          line.WaiverReason,
		}
	}

	if applied.ClampedToZero {
		note := clampedRemark
		if remarks != nil && *remarks != "" {
			note = *remarks + "; " + clampedRemark
		}
		structure.Remarks = &note
	}

	return structure, applied.ClampedToZero
}
