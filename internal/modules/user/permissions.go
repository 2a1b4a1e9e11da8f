package user

// Permission names an action a role is allowed to perform.
type Permission string

const (
	PermViewOwnOrders     Permission = "view_own_orders"
	PermViewAllOrders     Permission = "view_all_orders"
	PermUpdateOrderStatus Permission = "update_order_status"
	PermMarkPaid          Permission = "mark_paid"
	PermViewCustomers     Permission = "view_customers"
	PermViewAuditLog      Permission = "view_audit_log"
	PermGenerateReports   Permission = "generate_reports"
	PermManageCatalog     Permission = "manage_catalog"
)

// PermissionSet is the full capability set granted to a role.
type PermissionSet map[Permission]bool

// Has reports whether the set grants the given permission.
func (ps PermissionSet) Has(p Permission) bool { return ps[p] }

var rolePermissions = map[Role]PermissionSet{
	RoleCustomer: {
		PermViewOwnOrders: true,
	},
	RoleStaff: {
		PermViewOwnOrders:     true,
		PermViewAllOrders:     true,
		PermUpdateOrderStatus: true,
		PermMarkPaid:          true,
		PermViewCustomers:     true,
	},
	RoleAdmin: {
		PermViewOwnOrders:     true,
		PermViewAllOrders:     true,
		PermUpdateOrderStatus: true,
		PermMarkPaid:          true,
		PermViewCustomers:     true,
		PermViewAuditLog:      true,
		PermGenerateReports:   true,
		PermManageCatalog:     true,
	},
}

// Permissions maps a role to its capability set. Unknown roles get an empty
// set, which denies everything.
func Permissions(role Role) PermissionSet {
	ps, ok := rolePermissions[role]
	if !ok {
		return PermissionSet{}
	}
	return ps
}
