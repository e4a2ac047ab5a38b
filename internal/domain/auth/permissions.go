package auth

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

const (
	PermEmployeesRead  = "hr.employees.read"
	PermEmployeesWrite = "hr.employees.write"
	PermPayrollRead    = "payroll.read"
	PermPayrollRun     = "payroll.run"
	PermLedgerRead     = "ledger.read"
	PermTasksRead      = "tasks.read"
	PermTasksWrite     = "tasks.write"
	PermReportsRead    = "reports.read"
	PermAdminMetrics   = "admin.metrics"
)

// Role grants are static; RBAC administration is out of scope, so there is no
// role_permissions table to drift from these.
var RolePermissions = map[string][]string{
	RoleOperator: {
		PermEmployeesRead,
		PermPayrollRead,
		PermLedgerRead,
		PermTasksRead,
		PermTasksWrite,
		PermReportsRead,
	},
	RoleAdmin: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermPayrollRead,
		PermPayrollRun,
		PermLedgerRead,
		PermTasksRead,
		PermTasksWrite,
		PermReportsRead,
		PermAdminMetrics,
	},
}

func HasPermission(role, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}
