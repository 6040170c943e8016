package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sekolahku_backend/internals/constants"
	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

var (
	schoolA = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	schoolB = uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
)

func levelAdmin(levelRaw string) Actor {
	lv, ok := studentModel.ParseLevel(levelRaw)
	return Actor{
		UserID:   uuid.New(),
		SchoolID: schoolA,
		Role:     constants.RoleSchoolFeesLevelAdmin,
		LevelRaw: levelRaw,
		Level:    lv,
		LevelOK:  ok,
	}
}

func studentOf(level string) studentModel.StudentModel {
	s := studentModel.StudentModel{
		StudentID:       uuid.New(),
		StudentSchoolID: schoolA,
		StudentLevelRaw: level,
		StudentIsActive: true,
	}
	s.NormalizeLevel()
	return s
}

func TestLevelAdmin_SeesOnlyOwnLevel_BothEncodings(t *testing.T) {
	// admin di-provision dengan format lama "3"
	admin := levelAdmin("3")

	// pelajar tersimpan dengan kedua format historis
	assert.True(t, admin.CanSeeStudent(studentOf("3")))
	assert.True(t, admin.CanSeeStudent(studentOf("Form 3")))

	assert.False(t, admin.CanSeeStudent(studentOf("4")))
	assert.False(t, admin.CanSeeStudent(studentOf("Form 4")))

	// format baru di admin juga harus menangkap format lama di pelajar
	admin2 := levelAdmin("Form 3")
	assert.True(t, admin2.CanSeeStudent(studentOf("3")))
}

func TestLevelAdmin_CorruptLevelSeesNothing(t *testing.T) {
	admin := levelAdmin("entah apa")
	assert.False(t, admin.CanSeeStudent(studentOf("3")))

	scope, err := ScopeStudents(admin)
	assert.NoError(t, err)
	assert.NotNil(t, scope) // listing kosong yang valid, bukan error
}

func TestAdmin_Unrestricted_WithinTenant(t *testing.T) {
	admin := Actor{UserID: uuid.New(), SchoolID: schoolA, Role: constants.RoleAdmin}

	assert.True(t, admin.CanSeeStudent(studentOf("1")))
	assert.True(t, admin.CanSeeStudent(studentOf("5")))

	// tenant lain tetap tertutup
	other := studentOf("1")
	other.StudentSchoolID = schoolB
	assert.False(t, admin.CanSeeStudent(other))
}

func TestStudent_SeesOnlySelf(t *testing.T) {
	me := studentOf("2")
	actor := Actor{UserID: uuid.New(), SchoolID: schoolA, Role: constants.RoleStudent, StudentID: me.StudentID}

	assert.True(t, actor.CanSeeStudent(me))
	assert.False(t, actor.CanSeeStudent(studentOf("2")))
}

func TestStudent_CurrentFeesExcludePaid(t *testing.T) {
	me := studentOf("2")
	actor := Actor{UserID: uuid.New(), SchoolID: schoolA, Role: constants.RoleStudent, StudentID: me.StudentID}

	ob := feeModel.FeeObligationModel{
		FeeObligationSchoolID:  schoolA,
		FeeObligationStudentID: me.StudentID,
		FeeObligationStatus:    feeModel.FeeObligationStatusPending,
	}
	assert.True(t, actor.CanSeeObligation(ob, me.StudentLevel, ViewCurrent))

	ob.FeeObligationStatus = feeModel.FeeObligationStatusOverdue
	assert.True(t, actor.CanSeeObligation(ob, me.StudentLevel, ViewCurrent))

	ob.FeeObligationStatus = feeModel.FeeObligationStatusPaid
	assert.False(t, actor.CanSeeObligation(ob, me.StudentLevel, ViewCurrent))
	// tapi tetap muncul di riwayat
	assert.True(t, actor.CanSeeObligation(ob, me.StudentLevel, ViewHistory))
}

func TestStudent_NoLinkedRecordIsDistinctSignal(t *testing.T) {
	actor := Actor{UserID: uuid.New(), SchoolID: schoolA, Role: constants.RoleStudent, StudentID: uuid.Nil}

	_, err := ScopeStudents(actor)
	assert.ErrorIs(t, err, ErrNoStudentRecord)

	_, err = ScopeObligations(actor, ViewCurrent)
	assert.ErrorIs(t, err, ErrNoStudentRecord)

	_, err = ScopePayments(actor)
	assert.ErrorIs(t, err, ErrNoStudentRecord)

	_, err = ScopeIndividualFees(actor, true)
	assert.ErrorIs(t, err, ErrNoStudentRecord)
}

func TestUnknownRole_MatchesNothing(t *testing.T) {
	anon := Actor{SchoolID: schoolA, Role: ""}
	assert.False(t, anon.CanSeeStudent(studentOf("1")))

	weird := Actor{SchoolID: schoolA, Role: "mystery"}
	assert.False(t, weird.CanSeeStudent(studentOf("1")))

	scope, err := ScopeStudents(weird)
	assert.NoError(t, err)
	assert.NotNil(t, scope)
}

func TestLevelAdmin_ObligationsFollowStudentLevel(t *testing.T) {
	admin := levelAdmin("Form 3")
	ob := feeModel.FeeObligationModel{
		FeeObligationSchoolID:  schoolA,
		FeeObligationStudentID: uuid.New(),
		FeeObligationStatus:    feeModel.FeeObligationStatusPending,
	}

	assert.True(t, admin.CanSeeObligation(ob, 3, ViewCurrent))
	assert.False(t, admin.CanSeeObligation(ob, 4, ViewCurrent))
}
