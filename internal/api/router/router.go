package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"coursecraft/config"
	"coursecraft/internal/api/handler"
	"coursecraft/internal/api/middleware"
	"coursecraft/pkg/jwt"
	"coursecraft/pkg/redis"
)

// Setup builds the Gin engine with global middleware and every route
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(int64(cfg.Server.BodyLimitMB) << 20))

	r.GET("/health", h.Health.Health)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger))
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		// disciplines
		disciplines := v1.Group("/disciplines")
		{
			disciplines.GET("", h.Discipline.List)
			disciplines.POST("", h.Discipline.Create)
			disciplines.GET("/:id", h.Discipline.Get)
			disciplines.PUT("/:id", h.Discipline.Update)
			disciplines.DELETE("/:id", h.Discipline.Delete)
			disciplines.POST("/:id/access", h.Discipline.RecordAccess)
			disciplines.GET("/:id/completion", h.Discipline.Completion)

			disciplines.PUT("/:id/sessions-order", h.Session.Reorder)
			disciplines.POST("/:id/sessions", h.Session.Create)

			disciplines.GET("/:id/template", h.Template.Get)
			disciplines.PUT("/:id/template", h.Template.Update)

			disciplines.POST("/:id/assignments", h.Assignment.Assign)
			disciplines.DELETE("/:id/assignments/:professorId", h.Assignment.Unassign)

			disciplines.GET("/:id/comments", h.Comment.ListForDiscipline)
			disciplines.POST("/:id/comments", h.Comment.CreateForDiscipline)
		}

		// sessions
		sessions := v1.Group("/sessions")
		{
			sessions.PUT("/:id", h.Session.Update)
			sessions.DELETE("/:id", h.Session.Delete)
			sessions.POST("/:id/complete", h.Session.Complete)

			sessions.POST("/:id/materials", h.Content.AddMaterial)
			sessions.POST("/:id/activities", h.Content.AddActivity)
			sessions.POST("/:id/evaluations", h.Content.AddEvaluation)
			sessions.POST("/:id/extras", h.Content.AddExtra)

			sessions.GET("/:id/comments", h.Comment.ListForSession)
			sessions.POST("/:id/comments", h.Comment.CreateForSession)
		}

		// content
		v1.DELETE("/materials/:id", h.Content.DeleteMaterial)
		v1.DELETE("/activities/:id", h.Content.DeleteActivity)
		v1.DELETE("/evaluations/:id", h.Content.DeleteEvaluation)
		v1.DELETE("/extras/:id", h.Content.DeleteExtra)

		// professor view
		v1.GET("/professor/disciplines", h.Assignment.ProfessorDisciplines)

		// catalog
		v1.GET("/courses", h.Catalog.ListCourses)
		v1.POST("/courses", h.Catalog.CreateCourse)
		v1.PUT("/courses/:id", h.Catalog.UpdateCourse)
		v1.GET("/users", h.Catalog.ListUsers)
		v1.POST("/users", h.Catalog.CreateUser)
		v1.PUT("/users/:id", h.Catalog.UpdateUser)
	}

	return r
}
