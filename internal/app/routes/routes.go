package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/controllers"
	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/middleware"
	"github.com/edupulse/edupulse/internal/pkg/auth"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth      *controllers.AuthController
	User      *controllers.UserController
	Dept      *controllers.DepartmentController
	Course    *controllers.CourseController
	Faculty   *controllers.FacultyController
	Feedback  *controllers.FeedbackController
	Metric    *controllers.MetricController
	Dashboard *controllers.DashboardController
	Report    *controllers.ReportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/refresh", ctrl.Auth.Refresh)
	}

	// The feedback form is open: students browse courses and submit
	// ratings without signing in.
	v1.GET("/courses", ctrl.Course.ListCourses)
	v1.GET("/courses/:id", ctrl.Course.GetCourseByID)
	v1.POST("/feedback", ctrl.Feedback.SubmitFeedback)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))
	{
		authenticated.POST("/auth/logout", ctrl.Auth.Logout)
		authenticated.GET("/auth/me", ctrl.Auth.Me)
		authenticated.PUT("/users/me", ctrl.User.UpdateMyProfile)
	}

	// Review surfaces are shared by administrators and faculty members
	staff := authenticated.Group("")
	staff.Use(middleware.RoleRequired(models.RoleAdmin, models.RoleFaculty))
	{
		staff.GET("/departments", ctrl.Dept.ListDepartments)
		staff.GET("/departments/:id", ctrl.Dept.GetDepartmentByID)
		staff.GET("/faculty", ctrl.Faculty.ListFaculty)
		staff.GET("/faculty/:id", ctrl.Faculty.GetFacultyByID)
		staff.GET("/feedback", ctrl.Feedback.ListFeedback)
		staff.GET("/analytics/feedback", ctrl.Feedback.FeedbackAnalytics)
		staff.GET("/quality-metrics", ctrl.Metric.ListMetrics)
		staff.GET("/dashboard/summary", ctrl.Dashboard.Summary)
		staff.GET("/reports/quality-metrics", ctrl.Report.DownloadQualityMetrics)
	}

	// Catalog mutations are reserved for administrators
	admin := authenticated.Group("")
	admin.Use(middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/departments", ctrl.Dept.CreateDepartment)
		admin.PUT("/departments/:id", ctrl.Dept.UpdateDepartment)
		admin.DELETE("/departments/:id", ctrl.Dept.DeleteDepartment)

		admin.POST("/courses", ctrl.Course.CreateCourse)
		admin.PUT("/courses/:id", ctrl.Course.UpdateCourse)
		admin.DELETE("/courses/:id", ctrl.Course.DeleteCourse)

		admin.POST("/faculty", ctrl.Faculty.CreateFaculty)
		admin.PUT("/faculty/:id", ctrl.Faculty.UpdateFaculty)
		admin.DELETE("/faculty/:id", ctrl.Faculty.DeleteFaculty)

		admin.POST("/quality-metrics/recalculate", ctrl.Metric.RecalculateMetrics)
	}
}
