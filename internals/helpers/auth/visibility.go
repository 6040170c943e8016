// file: internals/helpers/auth/visibility.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	feeModel "sekolahku_backend/internals/features/finance/fees/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

/* =========================================================
   VisibilityFilter — SATU tempat untuk aturan "siapa boleh
   lihat baris mana". Controller mengompose scope ini dengan
   filter lain (search, date range, status) sebelum eksekusi;
   tidak ada lagi cek role tersebar per endpoint.
========================================================= */

// ErrNoStudentRecord: aktor ber-role student tapi profilnya tidak terhubung
// ke baris students manapun (misconfig provisioning). HARUS dibedakan dari
// "nol yuran" — caller menampilkan state tersendiri, bukan list kosong.
var ErrNoStudentRecord = errors.New("akun student belum terhubung ke rekod pelajar")

// Actor: siapa yang sedang bertanya, dibangun dari Locals hasil middleware JWT.
type Actor struct {
	UserID   uuid.UUID
	SchoolID uuid.UUID
	Role     string

	// Diisi untuk school_fees_level_admin; raw dipertahankan karena data
	// provisioning lama memakai dua format ("3" vs "Form 3").
	LevelRaw string
	Level    studentModel.Level
	LevelOK  bool

	// Diisi untuk role student (uuid.Nil = belum terhubung).
	StudentID uuid.UUID
}

// ActorFromContext membangun Actor dari token. Role kosong/asing tetap
// menghasilkan Actor valid yang match-nya kosong (bukan error di sini —
// lapisan HTTP yang memutuskan 401/403).
func ActorFromContext(c *fiber.Ctx) (Actor, error) {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return Actor{}, err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return Actor{}, err
	}

	a := Actor{
		UserID:   userID,
		SchoolID: schoolID,
		Role:     helper.GetRoleFromToken(c),
	}
	if a.Role == constants.RoleSchoolFeesLevelAdmin {
		a.LevelRaw = helper.GetLevelFromToken(c)
		a.Level, a.LevelOK = studentModel.ParseLevel(a.LevelRaw)
	}
	if a.Role == constants.RoleStudent {
		a.StudentID = helper.GetStudentIDFromToken(c)
	}
	return a, nil
}

/* =========================================================
   Pure matchers — dipakai scope SQL di bawah dan unit test
========================================================= */

// CanSeeStudent: apakah aktor boleh melihat satu baris pelajar.
func (a Actor) CanSeeStudent(s studentModel.StudentModel) bool {
	if s.StudentSchoolID != a.SchoolID {
		return false
	}
	switch {
	case constants.IsUnrestricted(a.Role), a.Role == constants.RoleSchoolFeesAdmin:
		return true
	case a.Role == constants.RoleSchoolFeesLevelAdmin:
		// bandingkan hasil normalisasi — menutup dua format historis
		return a.LevelOK && s.StudentLevel == a.Level
	case a.Role == constants.RoleStudent:
		return a.StudentID != uuid.Nil && s.StudentID == a.StudentID
	default:
		return false
	}
}

// ObligationView: daftar mana yang diminta pelajar.
type ObligationView int

const (
	// ViewCurrent: "yuran semasa" — paid disembunyikan.
	ViewCurrent ObligationView = iota
	// ViewHistory: riwayat — semua status tampil.
	ViewHistory
)

// CanSeeObligation: versi murni untuk satu baris (dipakai test & display path).
func (a Actor) CanSeeObligation(ob feeModel.FeeObligationModel, ownerLevel studentModel.Level, view ObligationView) bool {
	if ob.FeeObligationSchoolID != a.SchoolID {
		return false
	}
	switch {
	case constants.IsUnrestricted(a.Role), a.Role == constants.RoleSchoolFeesAdmin:
		return true
	case a.Role == constants.RoleSchoolFeesLevelAdmin:
		return a.LevelOK && ownerLevel == a.Level
	case a.Role == constants.RoleStudent:
		if a.StudentID == uuid.Nil || ob.FeeObligationStudentID != a.StudentID {
			return false
		}
		if view == ViewCurrent {
			return ob.IsOutstanding()
		}
		return true
	default:
		return false
	}
}

/* =========================================================
   GORM scopes — predicate, bukan list termaterialisasi
========================================================= */

// matchNothing: role asing/unauthenticated → hasil kosong yang valid.
func matchNothing(db *gorm.DB) *gorm.DB { return db.Where("1 = 0") }

// ScopeStudents membatasi query atas students.
func ScopeStudents(a Actor) (func(*gorm.DB) *gorm.DB, error) {
	switch {
	case constants.IsUnrestricted(a.Role), a.Role == constants.RoleSchoolFeesAdmin:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("student_school_id = ?", a.SchoolID)
		}, nil

	case a.Role == constants.RoleSchoolFeesLevelAdmin:
		if !a.LevelOK {
			// level admin dengan level tak terparse → listing kosong, bukan error
			return matchNothing, nil
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("student_school_id = ? AND student_level = ?", a.SchoolID, a.Level)
		}, nil

	case a.Role == constants.RoleStudent:
		if a.StudentID == uuid.Nil {
			return nil, ErrNoStudentRecord
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("student_school_id = ? AND student_id = ?", a.SchoolID, a.StudentID)
		}, nil

	default:
		return matchNothing, nil
	}
}

// studentSubquery: baris finansial diturunkan dari himpunan pelajar yang
// boleh dilihat aktor.
func studentSubquery(a Actor, db *gorm.DB) *gorm.DB {
	q := db.Session(&gorm.Session{NewDB: true}).
		Table("students").
		Select("student_id").
		Where("student_school_id = ? AND student_deleted_at IS NULL", a.SchoolID)
	if a.Role == constants.RoleSchoolFeesLevelAdmin {
		q = q.Where("student_level = ?", a.Level)
	}
	return q
}

// ScopeObligations membatasi query atas fee_obligations.
func ScopeObligations(a Actor, view ObligationView) (func(*gorm.DB) *gorm.DB, error) {
	switch {
	case constants.IsUnrestricted(a.Role), a.Role == constants.RoleSchoolFeesAdmin:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("fee_obligation_school_id = ?", a.SchoolID)
		}, nil

	case a.Role == constants.RoleSchoolFeesLevelAdmin:
		if !a.LevelOK {
			return matchNothing, nil
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("fee_obligation_school_id = ?", a.SchoolID).
				Where("fee_obligation_student_id IN (?)", studentSubquery(a, db))
		}, nil

	case a.Role == constants.RoleStudent:
		if a.StudentID == uuid.Nil {
			return nil, ErrNoStudentRecord
		}
		return func(db *gorm.DB) *gorm.DB {
			q := db.Where("fee_obligation_school_id = ? AND fee_obligation_student_id = ?", a.SchoolID, a.StudentID)
			if view == ViewCurrent {
				q = q.Where("fee_obligation_status <> ?", feeModel.FeeObligationStatusPaid)
			}
			return q
		}, nil

	default:
		return matchNothing, nil
	}
}

// ScopePayments membatasi query atas payments.
func ScopePayments(a Actor) (func(*gorm.DB) *gorm.DB, error) {
	switch {
	case constants.IsUnrestricted(a.Role), a.Role == constants.RoleSchoolFeesAdmin:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("payment_school_id = ?", a.SchoolID)
		}, nil

	case a.Role == constants.RoleSchoolFeesLevelAdmin:
		if !a.LevelOK {
			return matchNothing, nil
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("payment_school_id = ?", a.SchoolID).
				Where("payment_student_id IN (?)", studentSubquery(a, db))
		}, nil

	case a.Role == constants.RoleStudent:
		if a.StudentID == uuid.Nil {
			return nil, ErrNoStudentRecord
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("payment_school_id = ? AND payment_student_id = ?", a.SchoolID, a.StudentID)
		}, nil

	default:
		return matchNothing, nil
	}
}

// ScopeIndividualFees membatasi query atas individual_student_fees.
// currentOnly=true menyembunyikan yang sudah lunas (daftar "yuran semasa").
func ScopeIndividualFees(a Actor, currentOnly bool) (func(*gorm.DB) *gorm.DB, error) {
	switch {
	case constants.IsUnrestricted(a.Role), a.Role == constants.RoleSchoolFeesAdmin:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("individual_fee_school_id = ?", a.SchoolID)
		}, nil

	case a.Role == constants.RoleSchoolFeesLevelAdmin:
		if !a.LevelOK {
			return matchNothing, nil
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("individual_fee_school_id = ?", a.SchoolID).
				Where("individual_fee_student_id IN (?)", studentSubquery(a, db))
		}, nil

	case a.Role == constants.RoleStudent:
		if a.StudentID == uuid.Nil {
			return nil, ErrNoStudentRecord
		}
		return func(db *gorm.DB) *gorm.DB {
			q := db.Where("individual_fee_school_id = ? AND individual_fee_student_id = ?", a.SchoolID, a.StudentID)
			if currentOnly {
				q = q.Where("individual_fee_is_paid = FALSE")
			}
			return q
		}, nil

	default:
		return matchNothing, nil
	}
}
