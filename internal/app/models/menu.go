package models

// MenuItem is one entry of the navigation menu served to clients.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// MenuForRole maps a role tag to its fixed navigation menu. The
// structure is static per role; unknown or absent roles get the
// unprivileged menu.
func MenuForRole(role Role) []MenuItem {
	switch role {
	case RoleAdmin:
		return []MenuItem{
			{Label: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"},
			{Label: "Departments", Path: "/departments", Icon: "building"},
			{Label: "Courses", Path: "/courses", Icon: "book-open"},
			{Label: "Faculty", Path: "/faculty", Icon: "users"},
			{Label: "Feedback Analysis", Path: "/feedback-analysis", Icon: "message-square"},
			{Label: "Reports", Path: "/reports", Icon: "file-bar-chart"},
			{Label: "Settings", Path: "/settings", Icon: "settings"},
		}
	case RoleFaculty:
		return []MenuItem{
			{Label: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"},
			{Label: "Feedback Analysis", Path: "/feedback-analysis", Icon: "message-square"},
			{Label: "Settings", Path: "/settings", Icon: "settings"},
		}
	default:
		return []MenuItem{
			{Label: "Submit Feedback", Path: "/submit-feedback", Icon: "star"},
		}
	}
}
