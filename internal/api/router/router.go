package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ecelliitbhu/ecell-backend/config"
	"github.com/ecelliitbhu/ecell-backend/internal/api/handler"
	"github.com/ecelliitbhu/ecell-backend/internal/api/middleware"
	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
)

// Setup builds the gin engine with every route group.
// revocations may be nil, which disables the admin token revocation check.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, revocations middleware.RevocationChecker, logger *zap.Logger) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── health ──
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Status alive"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminOnly := middleware.AdminAuth(jwtMgr, revocations)

	users := r.Group("/users")
	{
		users.POST("/create", h.User.CreateUser)
		users.GET("/find", h.User.FindUser)
		users.GET("/:id", h.User.GetUser)
	}

	students := r.Group("/students")
	{
		students.POST("", h.Student.CreateStudent)
		students.GET("/:id", h.Student.GetStudent)
		students.PUT("/:id", h.Student.UpdateStudent)
	}

	recruiters := r.Group("/recruiters")
	{
		recruiters.POST("", h.Recruiter.CreateRecruiter)
		recruiters.GET("/:id", h.Recruiter.GetRecruiter)
		recruiters.PUT("/:id", h.Recruiter.UpdateRecruiter)
	}

	posts := r.Group("/posts")
	{
		posts.POST("", h.Post.CreatePost)
		posts.GET("", h.Post.ListPosts)
		posts.GET("/:id", h.Post.GetPost)
		posts.PUT("/:id", h.Post.UpdatePost)
		posts.DELETE("/:id", h.Post.DeletePost)
	}

	applications := r.Group("/applications")
	{
		applications.POST("", h.Application.CreateApplication)
		applications.GET("", h.Application.ListApplications)
		applications.GET("/:id", h.Application.GetApplication)
		applications.PUT("/:id", h.Application.UpdateApplication)
		applications.DELETE("/:id", h.Application.DeleteApplication)
	}

	ambassador := r.Group("/ambassador")
	{
		// ambassador facing
		ambassador.POST("/register", h.Ambassador.Register)
		ambassador.GET("/user", h.Ambassador.GetProfile)
		ambassador.POST("/update", h.Ambassador.UpdateProfile)
		ambassador.GET("/getLeaderboard", h.Ambassador.GetLeaderboard)
		ambassador.GET("/getTasks", h.Task.GetTasks)
		ambassador.GET("/calendar", h.Task.Calendar)
		ambassador.GET("/tasks", h.Task.ListTasks)
		ambassador.GET("/getAllTasks", h.Task.GetAllTasks)
		ambassador.POST("/submit", h.Submission.Submit)

		// admin identity
		ambassador.POST("/checkAdminEmail", h.Auth.CheckAdminEmail)
		ambassador.POST("/admin/login", h.Auth.Login)
		ambassador.POST("/admin/logout", adminOnly, h.Auth.Logout)

		// admin only
		ambassador.POST("/createTask", adminOnly, h.Task.CreateTask)
		ambassador.PUT("/tasks/:taskId", adminOnly, h.Task.UpdateTask)
		ambassador.DELETE("/tasks/:taskId", adminOnly, h.Task.DeleteTask)
		ambassador.GET("/admin/tasks", adminOnly, h.Submission.Feed)
		ambassador.POST("/admin/tasks", adminOnly, h.Submission.AdminTasks)
		ambassador.GET("/admin/export", adminOnly, h.Export.ExportOverview)
		ambassador.DELETE("/submissions/clear", adminOnly, h.Submission.ClearSubmissions)
	}

	return r, nil
}
