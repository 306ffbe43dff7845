package batchfee_test

import (
	"context"
	"errors"
	"testing"

	"go-feeledger/internal/academic"
	"go-feeledger/internal/batchfee"
	batchfeeerrors "go-feeledger/internal/batchfee/errors"
	"go-feeledger/internal/studentfee"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type applyFixture struct {
	tmpl   *batchfee.BatchFeeStructure
	roster []academic.Student
}

func newApplyFixture(deps *serviceDeps, students int) applyFixture {
	tmpl := &batchfee.BatchFeeStructure{
		ID:        uuid.New(),
		OrgID:     deps.tenant.OrgUUID(),
		BranchID:  deps.tenant.BranchUUID(),
		BatchID:   uuid.New(),
		SessionID: uuid.New(),
		IsActive:  true,
		LineItems: []batchfee.BatchFeeLineItem{
			{FeeComponentID: uuid.New(), Amount: 9000},
			{FeeComponentID: uuid.New(), Amount: 3000},
		},
	}
	roster := make([]academic.Student, students)
	for i := range roster {
		roster[i] = academic.Student{ID: uuid.New(), BatchID: tmpl.BatchID, IsActive: true}
	}

	deps.repo.EXPECT().FindByIDAndOrg(gomock.Any(), deps.tenant.OrgID, tmpl.ID.String()).Return(tmpl, nil)
	deps.academic.EXPECT().
		ActiveRoster(gomock.Any(), deps.tenant.OrgID, deps.tenant.BranchID, tmpl.BatchID.String()).
		Return(roster, nil)
	deps.students.EXPECT().WithTx(gomock.Any()).Return(deps.students)
	deps.ledger.EXPECT().WithTx(gomock.Any()).Return(deps.ledger)

	return applyFixture{tmpl: tmpl, roster: roster}
}

func existingFor(f applyFixture, idx int) studentfee.StudentFeeStructure {
	return studentfee.StudentFeeStructure{
		ID:        uuid.New(),
		StudentID: f.roster[idx].ID,
		SessionID: f.tmpl.SessionID,
	}
}

func TestApplyToStudents_CreatesAndSkips(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	f := newApplyFixture(deps, 3)
	existing := existingFor(f, 1)

	expectTx(t, deps.sqlMock, true)
	deps.students.EXPECT().
		FindBySessionForStudents(ctx, deps.tenant.OrgID, f.tmpl.SessionID.String(), gomock.Len(3)).
		Return([]studentfee.StudentFeeStructure{existing}, nil)

	var created []uuid.UUID
	deps.students.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *studentfee.StudentFeeStructure) error {
			assert.Equal(t, studentfee.SourceBatchDefault, s.Source)
			assert.Equal(t, f.tmpl.ID, *s.BatchFeeStructureID)
			assert.Equal(t, int64(12000), s.NetAmount)
			created = append(created, s.StudentID)
			return nil
		}).
		Times(2)

	res, err := deps.service.ApplyToStudents(ctx, deps.tenant, f.tmpl.ID.String(), false, "")

	assert.NoError(t, err)
	assert.Equal(t, batchfee.ApplyResult{Applied: 2, Skipped: 1}, res)
	assert.ElementsMatch(t, []uuid.UUID{f.roster[0].ID, f.roster[2].ID}, created)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApplyToStudents_OverwriteReplacesLedger(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	f := newApplyFixture(deps, 2)
	existing := existingFor(f, 0)

	expectTx(t, deps.sqlMock, true)
	deps.students.EXPECT().FindBySessionForStudents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	gomock.InOrder(
		deps.students.EXPECT().
			LockBySessionForStudents(ctx, deps.tenant.OrgID, f.tmpl.SessionID.String(), gomock.Len(2)).
			Return([]studentfee.StudentFeeStructure{existing}, nil),
		deps.ledger.EXPECT().LockInstallments(ctx, deps.tenant.OrgID, []string{existing.ID.String()}).Return(nil),
		deps.ledger.EXPECT().PaidTotals(ctx, deps.tenant.OrgID, []string{existing.ID.String()}).Return(map[string]int64{}, nil),
		deps.ledger.EXPECT().DeleteStudentLedgers(ctx, deps.tenant.OrgID, []string{existing.ID.String()}).Return(nil),
		deps.students.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2),
	)

	res, err := deps.service.ApplyToStudents(ctx, deps.tenant, f.tmpl.ID.String(), true, uuid.NewString())

	assert.NoError(t, err)
	assert.Equal(t, batchfee.ApplyResult{Applied: 1, Replaced: 1}, res)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApplyToStudents_PaymentsBlockOverwriteWithoutMutation(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	f := newApplyFixture(deps, 3)
	paidStructure := existingFor(f, 0)
	cleanStructure := existingFor(f, 2)

	expectTx(t, deps.sqlMock, false)
	deps.students.EXPECT().
		LockBySessionForStudents(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]studentfee.StudentFeeStructure{paidStructure, cleanStructure}, nil)
	deps.ledger.EXPECT().LockInstallments(ctx, gomock.Any(), gomock.Len(2)).Return(nil)
	deps.ledger.EXPECT().
		PaidTotals(ctx, gomock.Any(), gomock.Len(2)).
		Return(map[string]int64{paidStructure.ID.String(): 1500}, nil)
	deps.ledger.EXPECT().DeleteStudentLedgers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.students.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	res, err := deps.service.ApplyToStudents(ctx, deps.tenant, f.tmpl.ID.String(), true, "")

	assert.NoError(t, err)
	assert.NotNil(t, res.Blocked)
	assert.Equal(t, []batchfee.BlockedStudent{{
		StudentID:   f.roster[0].ID.String(),
		StructureID: paidStructure.ID.String(),
		PaidAmount:  1500,
	}}, res.Blocked.Students)
	assert.Zero(t, res.Applied)
	assert.Zero(t, res.Replaced)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApplyToStudents_MidBatchFailureRollsBackEverything(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	f := newApplyFixture(deps, 3)
	existing := existingFor(f, 2)

	expectTx(t, deps.sqlMock, false)
	deps.students.EXPECT().
		LockBySessionForStudents(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]studentfee.StudentFeeStructure{existing}, nil)
	deps.ledger.EXPECT().LockInstallments(ctx, gomock.Any(), gomock.Any()).Return(nil)
	deps.ledger.EXPECT().PaidTotals(ctx, gomock.Any(), gomock.Any()).Return(map[string]int64{}, nil)
	deps.ledger.EXPECT().DeleteStudentLedgers(ctx, gomock.Any(), gomock.Any()).Return(nil)

	boom := errors.New("connection reset")
	gomock.InOrder(
		deps.students.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		deps.students.EXPECT().Create(ctx, gomock.Any()).Return(boom),
	)

	res, err := deps.service.ApplyToStudents(ctx, deps.tenant, f.tmpl.ID.String(), true, "")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, batchfee.ApplyResult{}, res)
	// the rollback expectation proves the first insert and the deletes were undone
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApplyToStudents_ConcurrentCreateIsConflict(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	f := newApplyFixture(deps, 1)

	expectTx(t, deps.sqlMock, false)
	deps.students.EXPECT().
		FindBySessionForStudents(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	deps.students.EXPECT().
		Create(ctx, gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_student_fee_structure_session"})

	res, err := deps.service.ApplyToStudents(ctx, deps.tenant, f.tmpl.ID.String(), false, "")

	assert.ErrorIs(t, err, batchfeeerrors.ErrConcurrentApply)
	assert.Equal(t, batchfee.ApplyResult{}, res)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestApplyToStudents_InactiveTemplate(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	tmpl := &batchfee.BatchFeeStructure{ID: uuid.New(), BranchID: deps.tenant.BranchUUID(), IsActive: false}
	deps.repo.EXPECT().FindByIDAndOrg(ctx, deps.tenant.OrgID, tmpl.ID.String()).Return(tmpl, nil)

	_, err := deps.service.ApplyToStudents(ctx, deps.tenant, tmpl.ID.String(), false, "")

	assert.Error(t, err)
}
