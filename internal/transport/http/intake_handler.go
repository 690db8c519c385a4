package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"emaxplatform/internal/application"
)

type CourseEnrollmentHandler struct {
	enrollments *application.CourseEnrollmentService
	log         *slog.Logger
}

func NewCourseEnrollmentHandler(enrollments *application.CourseEnrollmentService, log *slog.Logger) *CourseEnrollmentHandler {
	return &CourseEnrollmentHandler{enrollments: enrollments, log: log}
}

// GET /api/course-enrollments
func (h *CourseEnrollmentHandler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		h.get(c, id)
		return
	}
	res, err := h.enrollments.List(c, application.CourseEnrollmentListParams{
		ListParams: listParams(c),
		CourseID:   c.Query("courseId"),
		Status:     c.Query("status"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CourseEnrollmentHandler) GetOne(c *gin.Context) {
	h.get(c, c.Param("id"))
}

func (h *CourseEnrollmentHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	res, err := h.enrollments.Create(c, payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *CourseEnrollmentHandler) Update(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	res, err := h.enrollments.Update(c, idParam(c), payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CourseEnrollmentHandler) Delete(c *gin.Context) {
	res, err := h.enrollments.Delete(c, idParam(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted successfully", "enrollment": res})
}

func (h *CourseEnrollmentHandler) get(c *gin.Context, rawID string) {
	res, err := h.enrollments.Get(c, rawID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type EnrollmentHandler struct {
	enrollments *application.EnrollmentService
	log         *slog.Logger
}

func NewEnrollmentHandler(enrollments *application.EnrollmentService, log *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, log: log}
}

// GET /api/enrollments. The collection route reports NOT_FOUND, the
// /:id routes ENROLLMENT_NOT_FOUND.
func (h *EnrollmentHandler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		res, err := h.enrollments.Get(c, id)
		if err != nil {
			respondError(c, h.log, withNotFoundCode(err, "NOT_FOUND"))
			return
		}
		c.JSON(http.StatusOK, res)
		return
	}
	res, err := h.enrollments.List(c, listParams(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *EnrollmentHandler) GetOne(c *gin.Context) {
	res, err := h.enrollments.Get(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *EnrollmentHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	res, err := h.enrollments.Create(c, payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// DELETE /api/enrollments?id=
func (h *EnrollmentHandler) DeleteByQuery(c *gin.Context) {
	res, err := h.enrollments.Delete(c, c.Query("id"))
	if err != nil {
		respondError(c, h.log, withNotFoundCode(err, "NOT_FOUND"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted successfully", "deleted": res})
}

// DELETE /api/enrollments/:id
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	res, err := h.enrollments.Delete(c, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted successfully", "enrollment": res})
}

type TeamApplicationHandler struct {
	applications *application.TeamApplicationService
	log          *slog.Logger
}

func NewTeamApplicationHandler(applications *application.TeamApplicationService, log *slog.Logger) *TeamApplicationHandler {
	return &TeamApplicationHandler{applications: applications, log: log}
}

func (h *TeamApplicationHandler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		h.get(c, id)
		return
	}
	res, err := h.applications.List(c, listParams(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *TeamApplicationHandler) GetOne(c *gin.Context) {
	h.get(c, c.Param("id"))
}

func (h *TeamApplicationHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	res, err := h.applications.Create(c, payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *TeamApplicationHandler) Delete(c *gin.Context) {
	res, err := h.applications.Delete(c, idParam(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully", "application": res})
}

func (h *TeamApplicationHandler) get(c *gin.Context, rawID string) {
	res, err := h.applications.Get(c, rawID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
