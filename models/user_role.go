package models

type UserRole string

const (
	OwnerRole     UserRole = "OWNER"
	AdminRole     UserRole = "ADMIN"
	HRRole        UserRole = "HR"
	ManagerRole   UserRole = "MANAGER"
	SchedulerRole UserRole = "SCHEDULER"
	PayrollRole   UserRole = "PAYROLL"
	StaffRole     UserRole = "STAFF"
)

var roleHumanName = map[UserRole]string{
	OwnerRole:     "Owner",
	AdminRole:     "Administrator",
	HRRole:        "HR",
	ManagerRole:   "Manager",
	SchedulerRole: "Scheduler",
	PayrollRole:   "Payroll",
	StaffRole:     "Staff",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsAdminLevel reports whether the role may read and mutate other users'
// records without ownership checks.
func (r UserRole) IsAdminLevel() bool {
	return r == OwnerRole || r == AdminRole
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// SystemUser is the actor id recorded when a scheduled sweep, not an
// authenticated user, performs an operation.
const SystemUser = "system"
