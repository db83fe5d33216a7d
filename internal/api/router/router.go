package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vasanthsingh/QuickPass/config"
	"github.com/vasanthsingh/QuickPass/internal/api/handler"
	"github.com/vasanthsingh/QuickPass/internal/api/middleware"
	"github.com/vasanthsingh/QuickPass/internal/model"
	"github.com/vasanthsingh/QuickPass/pkg/jwt"
	"github.com/vasanthsingh/QuickPass/pkg/redis"
)

// loginRateLimit throttles credential guessing per client IP.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute

	// maxBodyBytes leaves room for import workbooks.
	maxBodyBytes = 10 << 20
)

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	auth := middleware.JWTAuth(jwtMgr, rdb)
	loginLimiter := middleware.RateLimit(rdb, loginRateLimit, loginRateWindow)

	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	wardenOnly := middleware.RoleAuth(model.RoleWarden)
	securityOnly := middleware.RoleAuth(model.RoleSecurity)
	studentOnly := middleware.RoleAuth(model.RoleStudent)

	api := r.Group("/api")
	{
		api.GET("/health", handler.Health)

		// ── session ──
		api.POST("/auth/logout", auth, h.Auth.Logout)

		// ── admin accounts ──
		admin := api.Group("/admin")
		{
			admin.POST("/login", loginLimiter, h.Admin.Login)
			admin.POST("/create", auth, adminOnly, h.Admin.Create)
			admin.GET("", auth, adminOnly, h.Admin.List)
			admin.GET("/dashboard", auth, adminOnly, h.Admin.Dashboard)
			admin.PUT("/update-password", auth, adminOnly, h.Admin.UpdatePassword)
			admin.GET("/:id", auth, adminOnly, h.Admin.Get)
			admin.PUT("/:id", auth, adminOnly, h.Admin.Update)
			admin.DELETE("/:id", auth, adminOnly, h.Admin.Delete)
		}

		// ── warden accounts ──
		wardens := api.Group("/wardens")
		{
			wardens.POST("/login", loginLimiter, h.Warden.Login)
			wardens.GET("/profile", auth, wardenOnly, h.Warden.Profile)
			wardens.PUT("/profile", auth, wardenOnly, h.Warden.UpdateProfile)
			wardens.PUT("/update-password", auth, wardenOnly, h.Warden.UpdatePassword)
			wardens.POST("", auth, adminOnly, h.Warden.Create)
			wardens.GET("", auth, adminOnly, h.Warden.List)
			wardens.GET("/:id", auth, adminOnly, h.Warden.Get)
			wardens.PUT("/:id", auth, adminOnly, h.Warden.Update)
			wardens.DELETE("/:id", auth, adminOnly, h.Warden.Delete)
		}

		// ── security guard accounts ──
		security := api.Group("/security")
		{
			security.POST("/login", loginLimiter, h.Security.Login)
			security.PUT("/update-password", auth, securityOnly, h.Security.UpdatePassword)
			security.POST("", auth, adminOnly, h.Security.Create)
			security.GET("", auth, adminOnly, h.Security.List)
			security.GET("/:id", auth, adminOnly, h.Security.Get)
			security.PUT("/:id", auth, adminOnly, h.Security.Update)
			security.DELETE("/:id", auth, adminOnly, h.Security.Delete)
		}

		// ── student accounts ──
		students := api.Group("/students")
		{
			students.POST("/login", loginLimiter, h.Student.Login)
			// Bootstrap self-registration used during hostel onboarding.
			students.POST("/add", h.Student.Create)
			students.GET("/profile", auth, studentOnly, h.Student.Profile)
			students.PUT("/profile", auth, studentOnly, h.Student.UpdateProfile)
			students.PUT("/update-password", auth, studentOnly, h.Student.UpdatePassword)
			students.POST("/profile-requests", auth, studentOnly, h.Student.CreateProfileRequest)
			students.GET("/profile-requests", auth, studentOnly, h.Student.ListProfileRequests)
			students.POST("/import", auth, adminOnly, h.Student.Import)
			students.POST("", auth, adminOnly, h.Student.Create)
			students.GET("", auth, adminOnly, h.Student.List)
			students.GET("/:id", auth, adminOnly, h.Student.Get)
			students.PUT("/:id", auth, adminOnly, h.Student.Update)
			students.DELETE("/:id", auth, adminOnly, h.Student.Delete)
		}

		// ── warden-mediated management ──
		warden := api.Group("/warden", auth, wardenOnly)
		{
			warden.GET("/students/database", h.Student.DatabaseView)
			warden.POST("/students", h.Student.Create)
			warden.GET("/students", h.Student.List)
			warden.GET("/students/:id", h.Student.Get)
			warden.PUT("/students/:id", h.Student.Update)
			warden.DELETE("/students/:id", h.Student.Delete)
			warden.POST("/security", h.Security.Create)
			warden.DELETE("/security/:id", h.Security.Delete)
		}
	}

	return r
}
