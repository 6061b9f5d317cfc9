package models

import "testing"

func menuPaths(items []MenuItem) map[string]bool {
	paths := map[string]bool{}
	for _, item := range items {
		paths[item.Path] = true
	}
	return paths
}

func TestMenuForRoleAdmin(t *testing.T) {
	menu := MenuForRole(RoleAdmin)
	if len(menu) != 7 {
		t.Fatalf("admin menu has %d entries, want 7", len(menu))
	}

	paths := menuPaths(menu)
	for _, want := range []string{"/dashboard", "/departments", "/courses", "/faculty", "/reports"} {
		if !paths[want] {
			t.Errorf("admin menu missing %s", want)
		}
	}
}

func TestMenuForRoleFaculty(t *testing.T) {
	menu := MenuForRole(RoleFaculty)
	if len(menu) != 3 {
		t.Fatalf("faculty menu has %d entries, want 3", len(menu))
	}

	paths := menuPaths(menu)
	if paths["/departments"] || paths["/courses"] {
		t.Error("faculty menu must not expose catalog management")
	}
	if !paths["/feedback-analysis"] {
		t.Error("faculty menu missing /feedback-analysis")
	}
}

func TestMenuForRoleNoneAndUnknown(t *testing.T) {
	for _, role := range []Role{RoleNone, Role("GUEST"), Role("")} {
		menu := MenuForRole(role)
		if len(menu) != 1 || menu[0].Path != "/submit-feedback" {
			t.Errorf("role %q: expected the submit-feedback menu, got %+v", role, menu)
		}
	}
}
