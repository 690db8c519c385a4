package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"emaxplatform/internal/application"
)

type CourseHandler struct {
	courses *application.CourseService
	log     *slog.Logger
}

func NewCourseHandler(courses *application.CourseService, log *slog.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, log: log}
}

// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		h.get(c, id)
		return
	}

	res, err := h.courses.List(c, application.CourseListParams{
		ListParams: listParams(c),
		Category:   c.Query("category"),
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	h.get(c, c.Param("id"))
}

// GET /api/courses/category/:category
func (h *CourseHandler) ByCategory(c *gin.Context) {
	res, err := h.courses.ListByCategory(c, c.Param("category"), listParams(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/courses/slug/:slug
func (h *CourseHandler) BySlug(c *gin.Context) {
	res, err := h.courses.GetBySlug(c, c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	res, err := h.courses.Create(c, payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PUT /api/courses?id= and PUT /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	res, err := h.courses.Update(c, idParam(c), payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/courses?id= and DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	res, err := h.courses.Delete(c, idParam(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully", "course": res})
}

func (h *CourseHandler) get(c *gin.Context, rawID string) {
	res, err := h.courses.Get(c, rawID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func listParams(c *gin.Context) application.ListParams {
	return application.ListParams{
		Search: c.Query("search"),
		Limit:  c.Query("limit"),
		Offset: c.Query("offset"),
	}
}

// idParam reads the identity from the path, falling back to ?id=.
func idParam(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Query("id")
}
