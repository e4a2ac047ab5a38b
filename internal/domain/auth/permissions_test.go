package auth

import "testing"

func TestOperatorCannotRunPayroll(t *testing.T) {
	if HasPermission(RoleOperator, PermPayrollRun) {
		t.Fatal("operator must not run payroll")
	}
	if !HasPermission(RoleAdmin, PermPayrollRun) {
		t.Fatal("admin must run payroll")
	}
}

func TestUnknownRoleHasNothing(t *testing.T) {
	if HasPermission("viewer", PermReportsRead) {
		t.Fatal("unknown role must have no permissions")
	}
}

func TestEveryRoleReadsReports(t *testing.T) {
	for role := range RolePermissions {
		if !HasPermission(role, PermReportsRead) {
			t.Fatalf("role %s should read reports", role)
		}
	}
}
