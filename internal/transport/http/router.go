package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"emaxplatform/internal/middleware"
)

type Handlers struct {
	Courses           *CourseHandler
	CourseEnrollments *CourseEnrollmentHandler
	Enrollments       *EnrollmentHandler
	TeamApplications  *TeamApplicationHandler
	Health            *HealthHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	// SubmitLimit caps intake POSTs per client IP per SubmitWindow. Zero disables.
	SubmitLimit  int
	SubmitWindow time.Duration
	// Metrics is mounted at /metrics when non-nil.
	Metrics  http.Handler
	Observer middleware.RequestObserver
}

func NewRouter(h Handlers, limiter *middleware.RateLimiter, opts RouterOptions, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(log, opts.Observer))

	config := cors.DefaultConfig()
	if len(opts.AllowedOrigins) == 0 || slices.Contains(opts.AllowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.AllowedOrigins
		config.AllowCredentials = true
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.ExposeHeaders = []string{middleware.RequestIDHeader, "Retry-After"}
	r.Use(cors.New(config))

	r.GET("/healthz", h.Health.Check)
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	submit := func(key string) gin.HandlerFunc {
		return limiter.Limit(key, opts.SubmitLimit, opts.SubmitWindow)
	}

	api := r.Group("/api")
	{
		course := api.Group("/courses")
		{
			course.GET("", h.Courses.List)
			course.GET("/:id", h.Courses.GetOne)
			course.GET("/category/:category", h.Courses.ByCategory)
			course.GET("/slug/:slug", h.Courses.BySlug)
			course.POST("", h.Courses.Create)
			course.PUT("", h.Courses.Update)
			course.PUT("/:id", h.Courses.Update)
			course.DELETE("", h.Courses.Delete)
			course.DELETE("/:id", h.Courses.Delete)
		}
		courseEnrollment := api.Group("/course-enrollments")
		{
			courseEnrollment.GET("", h.CourseEnrollments.List)
			courseEnrollment.GET("/:id", h.CourseEnrollments.GetOne)
			courseEnrollment.POST("", submit("course_enrollment"), h.CourseEnrollments.Create)
			courseEnrollment.PUT("", h.CourseEnrollments.Update)
			courseEnrollment.PUT("/:id", h.CourseEnrollments.Update)
			courseEnrollment.DELETE("", h.CourseEnrollments.Delete)
			courseEnrollment.DELETE("/:id", h.CourseEnrollments.Delete)
		}
		enrollment := api.Group("/enrollments")
		{
			enrollment.GET("", h.Enrollments.List)
			enrollment.GET("/:id", h.Enrollments.GetOne)
			enrollment.POST("", submit("enrollment"), h.Enrollments.Create)
			enrollment.DELETE("", h.Enrollments.DeleteByQuery)
			enrollment.DELETE("/:id", h.Enrollments.Delete)
		}
		application := api.Group("/team-applications")
		{
			application.GET("", h.TeamApplications.List)
			application.GET("/:id", h.TeamApplications.GetOne)
			application.POST("", submit("team_application"), h.TeamApplications.Create)
			application.DELETE("", h.TeamApplications.Delete)
			application.DELETE("/:id", h.TeamApplications.Delete)
		}
	}

	return r
}
