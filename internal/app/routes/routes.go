package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"collabboard/internal/app/controllers"
	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	adminController *controllers.AdminController,
	projectController *controllers.ProjectController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Operational endpoints
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Student routes ---
	students := api.Group("/students")
	{
		students.POST("/register", studentController.Register)
		students.POST("/login", studentController.Login)

		studentsProtected := students.Group("")
		studentsProtected.Use(authMiddleware.RequireAuth(), middleware.RequireRole(models.RoleStudent))
		{
			studentsProtected.GET("/profile", studentController.GetProfile)
		}
	}

	// --- Teacher routes ---
	teachers := api.Group("/teachers")
	{
		teachers.POST("/register", teacherController.Register)
		teachers.POST("/login", teacherController.Login)

		teachersProtected := teachers.Group("")
		teachersProtected.Use(authMiddleware.RequireAuth(), middleware.RequireRole(models.RoleTeacher))
		{
			teachersProtected.GET("/profile", teacherController.GetProfile)
		}
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	{
		admin.POST("/login", adminController.Login)

		adminProtected := admin.Group("")
		adminProtected.Use(authMiddleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
		{
			adminProtected.GET("/profile", adminController.GetProfile)
			adminProtected.PUT("/change-password", adminController.ChangePassword)
			adminProtected.GET("/statistics", adminController.GetStatistics)
			adminProtected.GET("/teachers/pending", adminController.ListPendingTeachers)
			adminProtected.GET("/teachers/all", adminController.ListAllTeachers)
			adminProtected.PUT("/teachers/approve/:id", adminController.ApproveTeacher)
			adminProtected.PUT("/teachers/reject/:id", adminController.RejectTeacher)
		}
	}

	// --- Project routes ---
	projects := api.Group("/projects")
	projects.Use(authMiddleware.RequireAuth())
	{
		projectsStudent := projects.Group("")
		projectsStudent.Use(middleware.RequireRole(models.RoleStudent))
		{
			projectsStudent.POST("/upload", projectController.Upload)
			projectsStudent.GET("/student/me", projectController.ListOwn)
		}

		projectsTeacher := projects.Group("")
		projectsTeacher.Use(middleware.RequireRole(models.RoleTeacher))
		{
			projectsTeacher.GET("/teacher/all", projectController.ListAll)
			projectsTeacher.PUT("/evaluate/:id", projectController.Evaluate)
		}

		// Any authenticated caller may attempt a download; per-project
		// ownership is enforced by the service.
		projects.GET("/download/:id", projectController.Download)
	}

	// Unmatched routes get a uniform JSON 404.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")))
	})
}
