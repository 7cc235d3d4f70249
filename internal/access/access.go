// Package access defines the roles, capabilities and the fixed
// role → capability table shared by the client-side permission gate and the
// server-side route enforcement. Keeping one table means the UI gate and the
// API agree on what each role may do.
package access

// Role is one of the four user roles.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RolePhysician     Role = "physician"
	RoleViewer        Role = "viewer"
	RolePatient       Role = "patient"
)

// Capability is a named permission from the role table.
type Capability string

const (
	CanEditPatients     Capability = "canEditPatients"
	CanDeletePatients   Capability = "canDeletePatients"
	CanViewPatients     Capability = "canViewPatients"
	CanEditPhysicians   Capability = "canEditPhysicians"
	CanEditAppointments Capability = "canEditAppointments"
	CanEditAdmissions   Capability = "canEditAdmissions"
	CanEditRecords      Capability = "canEditRecords"
	CanEditBilling      Capability = "canEditBilling"
	CanManageRooms      Capability = "canManageRooms"
	CanManageUsers      Capability = "canManageUsers"
)

// rolePermissions is the fixed role → capability table.
var rolePermissions = map[Role]map[Capability]bool{
	RoleAdministrator: {
		CanEditPatients:     true,
		CanDeletePatients:   true,
		CanViewPatients:     true,
		CanEditPhysicians:   true,
		CanEditAppointments: true,
		CanEditAdmissions:   true,
		CanEditRecords:      true,
		CanEditBilling:      true,
		CanManageRooms:      true,
		CanManageUsers:      true,
	},
	RolePhysician: {
		CanEditPatients:     true,
		CanViewPatients:     true,
		CanEditAppointments: true,
		CanEditAdmissions:   true,
		CanEditRecords:      true,
	},
	RoleViewer: {
		CanViewPatients: true,
	},
	RolePatient: {
		// Patients may view their own data only.
		CanViewPatients: true,
	},
}

// Allowed is the pure permission lookup: role × capability → granted.
func Allowed(role Role, cap Capability) bool {
	return rolePermissions[role][cap]
}

// Valid reports whether the role is one of the four known roles.
func Valid(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}
