package routes

import (
	"medmatch/configs"
	"medmatch/controllers"
	"medmatch/entity"
	"medmatch/middlewares"
	"medmatch/repository"
	"medmatch/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	hospitalRepo := repository.NewHospitalRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, configs.Redis(), cfg.JWTSecret, cfg.JWTTTL)
	profileSvc := services.NewProfileService(doctorRepo, hospitalRepo)
	jobSvc := services.NewJobService(jobRepo, hospitalRepo, appRepo)
	appSvc := services.NewApplicationService(db, appRepo, jobRepo, doctorRepo, hospitalRepo, userRepo)
	adminSvc := services.NewAdminService(db, userRepo, jobRepo, appRepo, statsRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWTSecret, cfg.JWTTTL)
	jobCtrl := controllers.NewJobController(jobSvc)
	doctorCtrl := controllers.NewDoctorController(profileSvc, appSvc)
	hospitalCtrl := controllers.NewHospitalController(profileSvc, jobSvc, appSvc)
	adminCtrl := controllers.NewAdminController(adminSvc, jobSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Public job board
	r.GET("/jobs", jobCtrl.Search)
	r.GET("/jobs/:id", jobCtrl.Detail)

	// Doctor
	doctor := r.Group("/doctor", middlewares.AuthMiddleware(cfg, entity.RoleDoctor))
	{
		doctor.GET("/profile", doctorCtrl.Profile)
		doctor.PATCH("/profile", doctorCtrl.UpdateProfile)
		doctor.GET("/applications", doctorCtrl.MyApplications)

		// Applying is the one operation behind the verification gate
		doctor.POST("/jobs/:id/apply", middlewares.RequireVerified(db), doctorCtrl.Apply)
	}

	// Hospital
	hospital := r.Group("/hospital", middlewares.AuthMiddleware(cfg, entity.RoleHospital))
	{
		hospital.GET("/profile", hospitalCtrl.Profile)
		hospital.PATCH("/profile", hospitalCtrl.UpdateProfile)
		hospital.GET("/dashboard", hospitalCtrl.Dashboard)
		hospital.POST("/jobs", hospitalCtrl.PostJob)
		hospital.GET("/jobs", hospitalCtrl.MyJobs)
		hospital.PATCH("/jobs/:id/close", hospitalCtrl.CloseJob)
		hospital.GET("/jobs/:id/applicants", hospitalCtrl.Applicants)
		hospital.PATCH("/applications/:id/review", hospitalCtrl.Review)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/reports", adminCtrl.Reports)
		admin.GET("/users", adminCtrl.Users)
		admin.PATCH("/users/:id/verify", adminCtrl.VerifyUser)
		admin.DELETE("/users/:id", adminCtrl.DeactivateUser)
		admin.GET("/jobs", adminCtrl.ListJobs)
		admin.PATCH("/jobs/:id/close", adminCtrl.CloseJob)
		admin.GET("/applications", adminCtrl.ListApplications)
	}
}
