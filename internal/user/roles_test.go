package user

import "testing"

func TestRoleAtLeast(t *testing.T) {
	if !RoleAtLeast([]string{RoleCustomer}, RoleCustomer) {
		t.Fatalf("customer should satisfy customer")
	}
	if RoleAtLeast([]string{RoleCustomer}, RoleStaff) {
		t.Fatalf("customer must not satisfy staff")
	}
	if !RoleAtLeast([]string{RoleManager}, RoleStaff) {
		t.Fatalf("manager should satisfy staff")
	}
	if !RoleAtLeast([]string{RoleCustomer, RoleAdmin}, RoleManager) {
		t.Fatalf("admin in set should satisfy manager")
	}
	if RoleAtLeast(nil, RoleCustomer) {
		t.Fatalf("empty role set must not satisfy anything")
	}
	if RoleAtLeast([]string{"ghost"}, RoleCustomer) {
		t.Fatalf("unknown role must not satisfy anything")
	}
	if RoleAtLeast([]string{RoleAdmin}, "ghost") {
		t.Fatalf("unknown required role must deny")
	}
	// 大小写/空白不敏感
	if !RoleAtLeast([]string{" Staff "}, RoleStaff) {
		t.Fatalf("role matching should be case-insensitive")
	}
}

func TestRolesRoundTrip(t *testing.T) {
	u := User{Roles: RolesJoin([]string{RoleCustomer, "", " staff "})}
	got := u.RolesSlice()
	if len(got) != 2 || got[0] != RoleCustomer || got[1] != "staff" {
		t.Fatalf("unexpected roles: %#v", got)
	}
}
