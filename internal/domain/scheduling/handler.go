package scheduling

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
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)
	api.POST("/appointments", h.Create, auth.RequireCapability(access.CanEditAppointments))
	api.PUT("/appointments/:id", h.Update, auth.RequireCapability(access.CanEditAppointments))
	api.DELETE("/appointments/:id", h.Delete, auth.RequireCapability(access.CanEditAppointments))
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
	appointments, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, appointments)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.Create(c.Request().Context(), &a); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":       true,
		"AppointmentID": a.AppointmentID,
		"message":       "Appointment added successfully",
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return jsonError(c, err)
	}
	a.AppointmentID = id
	if err := h.svc.Update(c.Request().Context(), &a); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Appointment updated successfully",
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
		"message": "Appointment deleted successfully",
	})
}
