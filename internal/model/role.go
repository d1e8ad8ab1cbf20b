package model

// Role represents user roles in the system
type Role string

// Role codes as constants
const (
	RoleAdministrator Role = "Administrator"
	RoleManager       Role = "Manager"
	RoleCashier       Role = "Cashier"
)

// Action tags checked by the authorization gate. ActionAll is the
// Administrator wildcard and matches every other tag.
const (
	ActionAll       = "all"
	ActionOrders    = "orders"
	ActionMenu      = "menu"
	ActionInventory = "inventory"
	ActionKitchen   = "kitchen"
	ActionReports   = "reports"
	ActionSettings  = "settings"
	ActionEmployees = "employees"
)

// DefaultPermissions defines the static role -> action table
var DefaultPermissions = map[Role][]string{
	RoleAdministrator: {ActionAll},
	RoleManager:       {ActionOrders, ActionMenu, ActionInventory, ActionKitchen, ActionReports, ActionSettings},
	RoleCashier:       {ActionOrders},
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleCashier:
		return true
	}
	return false
}
