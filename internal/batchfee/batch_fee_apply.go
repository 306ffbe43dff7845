package batchfee

import (
	"context"

	batchfeeerrors "go-feeledger/internal/batchfee/errors"
	"go-feeledger/internal/studentfee"
	"go-feeledger/internal/tenant"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type applyPlan struct {
	create  []uuid.UUID
	replace []studentfee.StudentFeeStructure
	skipped int
}

// ApplyToStudents copies the template onto every active student of its batch.
//
// Students without a structure for the session get one. Students that already
// have one are skipped unless overwriteExisting is set, in which case their
// whole fee ledger is rebuilt from the template. Overwriting is refused as a
// whole, with nothing written, when any of those students has a payment.
func (s *service) ApplyToStudents(
	ctx context.Context,
	tn tenant.Tenant,
	id string,
	overwriteExisting bool,
	actor string,
) (ApplyResult, error) {
	if err := tn.Validate(); err != nil {
		return ApplyResult{}, err
	}

	tmpl, err := s.findInBranch(ctx, s.repo, tn, id)
	if err != nil {
		return ApplyResult{}, err
	}
	if !tmpl.IsActive {
		return ApplyResult{}, batchfeeerrors.ErrStructureInactive
	}

	roster, err := s.academic.ActiveRoster(ctx, tn.OrgID, tn.BranchID, tmpl.BatchID.String())
	if err != nil {
		return ApplyResult{}, err
	}
	if len(roster) == 0 {
		return ApplyResult{}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApplyResult{}, err
	}
	defer tx.Rollback()

	students := s.students.WithTx(tx)
	ledger := s.ledger.WithTx(tx)

	studentIDs := make([]string, len(roster))
	for i, st := range roster {
		studentIDs[i] = st.ID.String()
	}
	// Overwrites lock the structures first: installments generated after the
	// payment check would otherwise escape it and be deleted with their payments.
	find := students.FindBySessionForStudents
	if overwriteExisting {
		find = students.LockBySessionForStudents
	}
	existing, err := find(ctx, tn.OrgID, tmpl.SessionID.String(), studentIDs)
	if err != nil {
		return ApplyResult{}, err
	}

	plan := planApplication(studentIDs, existing, overwriteExisting)

	if len(plan.replace) > 0 {
		replaceIDs := lo.Map(plan.replace, func(st studentfee.StudentFeeStructure, _ int) string { return st.ID.String() })

		if err := ledger.LockInstallments(ctx, tn.OrgID, replaceIDs); err != nil {
			return ApplyResult{}, err
		}
		paid, err := ledger.PaidTotals(ctx, tn.OrgID, replaceIDs)
		if err != nil {
			return ApplyResult{}, err
		}
		if blocked := blockedStudents(plan.replace, paid); blocked != nil {
			s.logger.Warn("batch apply blocked by recorded payments",
				zap.String("org_id", tn.OrgID),
				zap.String("batch_fee_structure_id", tmpl.ID.String()),
				zap.Int("blocked_students", len(blocked.Students)),
			)
			return ApplyResult{Blocked: blocked}, nil
		}

		if err := ledger.DeleteStudentLedgers(ctx, tn.OrgID, replaceIDs); err != nil {
			return ApplyResult{}, err
		}
	}

	source := studentfee.Template{
		ID:        tmpl.ID,
		SessionID: tmpl.SessionID,
		Items: lo.Map(tmpl.LineItems, func(li BatchFeeLineItem, _ int) studentfee.TemplateItem {
			return studentfee.TemplateItem{ComponentID: li.FeeComponentID, Amount: li.Amount}
		}),
	}
	createdBy := parseActor(actor)

	targets := append([]uuid.UUID{}, plan.create...)
	for _, st := range plan.replace {
		targets = append(targets, st.StudentID)
	}
	for _, studentID := range targets {
		structure := studentfee.FromTemplate(tn, studentID, source, createdBy)
		if err := students.Create(ctx, &structure); err != nil {
			s.logger.Error("batch apply insert failed",
				zap.String("org_id", tn.OrgID),
				zap.String("student_id", studentID.String()),
				zap.Error(err),
			)
			if studentfee.IsStudentSessionConflict(err) {
				return ApplyResult{}, batchfeeerrors.ErrConcurrentApply
			}
			return ApplyResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ApplyResult{}, err
	}

	result := ApplyResult{
		Applied:  len(plan.create),
		Skipped:  plan.skipped,
		Replaced: len(plan.replace),
	}
	s.logger.Info("batch fee structure applied",
		zap.String("org_id", tn.OrgID),
		zap.String("batch_fee_structure_id", tmpl.ID.String()),
		zap.Int("applied", result.Applied),
		zap.Int("skipped", result.Skipped),
		zap.Int("replaced", result.Replaced),
	)
	return result, nil
}

func planApplication(rosterIDs []string, existing []studentfee.StudentFeeStructure, overwrite bool) applyPlan {
	byStudent := lo.KeyBy(existing, func(st studentfee.StudentFeeStructure) string { return st.StudentID.String() })

	var plan applyPlan
	for _, raw := range rosterIDs {
		current, ok := byStudent[raw]
		switch {
		case !ok:
			plan.create = append(plan.create, uuid.MustParse(raw))
		case overwrite:
			plan.replace = append(plan.replace, current)
		default:
			plan.skipped++
		}
	}
	return plan
}

func blockedStudents(replace []studentfee.StudentFeeStructure, paid map[string]int64) *OverwriteBlocked {
	var blocked []BlockedStudent
	for _, st := range replace {
		amount, ok := paid[st.ID.String()]
		if !ok {
			continue
		}
		blocked = append(blocked, BlockedStudent{
			StudentID:   st.StudentID.String(),
			StructureID: st.ID.String(),
			PaidAmount:  amount,
		})
	}
	if len(blocked) == 0 {
		return nil
	}
	return &OverwriteBlocked{Students: blocked}
}

func parseActor(userID string) *uuid.UUID {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &id
}
