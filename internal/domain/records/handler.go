package records

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/access"
	"github.com/hms/hms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	edit := auth.RequireCapability(access.CanEditRecords)

	api.GET("/records", h.List)
	api.GET("/records/:id", h.Get)
	api.POST("/records", h.Create, edit)
	api.PUT("/records/:id", h.Update, edit)
	api.DELETE("/records/:id", h.Delete, edit)
}

func jsonError(c echo.Context, err error) error {
	status := http.StatusBadRequest
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]interface{}{"error": err.Error()})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	pr, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, pr)
}

func (h *Handler) Create(c echo.Context) error {
	var pr PatientRecord
	if err := c.Bind(&pr); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.Create(c.Request().Context(), &pr); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":  true,
		"RecordID": pr.RecordID,
		"message":  "Medical record added successfully",
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var pr PatientRecord
	if err := c.Bind(&pr); err != nil {
		return jsonError(c, err)
	}
	pr.RecordID = id
	if err := h.svc.Update(c.Request().Context(), &pr); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Medical record updated successfully",
	})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Medical record deleted successfully",
	})
}
