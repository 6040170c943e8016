package constants

import "fmt"

// Role flat (bukan hierarki) — penentuan akses ada di VisibilityFilter.
const (
	RoleSuperuser           = "superuser"
	RoleAdmin               = "admin"
	RoleSchoolFeesAdmin     = "school_fees_admin"
	RoleSchoolFeesLevelAdmin = "school_fees_level_admin"
	RoleDonationAdmin       = "donation_admin"
	RoleWaqafAdmin          = "waqaf_admin"
	RoleStudent             = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyFeesStaffCanAccess  = "❌ Hanya petugas yuran yang boleh mengakses fitur %s."
	ErrOnlyDonationCanAccess   = "❌ Hanya admin donasi yang boleh mengakses fitur %s."
	ErrOnlyWaqafCanAccess      = "❌ Hanya admin waqaf yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess   = "❌ Hanya pelajar yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFeesStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyFeesStaffCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperuser,
		RoleAdmin,
		RoleSchoolFeesAdmin,
		RoleSchoolFeesLevelAdmin,
		RoleDonationAdmin,
		RoleWaqafAdmin,
		RoleStudent,
	}

	AdminOnly = []string{
		RoleSuperuser,
		RoleAdmin,
	}

	FeesStaff = []string{
		RoleSuperuser,
		RoleAdmin,
		RoleSchoolFeesAdmin,
		RoleSchoolFeesLevelAdmin,
	}

	DonationStaff = []string{
		RoleSuperuser,
		RoleAdmin,
		RoleDonationAdmin,
	}

	WaqafStaff = []string{
		RoleSuperuser,
		RoleAdmin,
		RoleWaqafAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

// IsUnrestricted: superuser/admin lihat semua data dalam tenant-nya.
func IsUnrestricted(role string) bool {
	return role == RoleSuperuser || role == RoleAdmin
}
