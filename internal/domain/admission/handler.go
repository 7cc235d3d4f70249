package admission

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
	api.GET("/admissions", h.ListAdmissions)
	api.GET("/admissions/:id", h.GetAdmission)
	api.POST("/admissions", h.CreateAdmission, auth.RequireCapability(access.CanEditAdmissions))
	api.PUT("/admissions/:id", h.UpdateAdmission, auth.RequireCapability(access.CanEditAdmissions))
	api.DELETE("/admissions/:id", h.DeleteAdmission, auth.RequireCapability(access.CanEditAdmissions))

	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/:id", h.GetRoom)
	api.POST("/rooms", h.CreateRoom, auth.RequireCapability(access.CanManageRooms))
	api.PUT("/rooms/:id", h.UpdateRoom, auth.RequireCapability(access.CanManageRooms))
	api.DELETE("/rooms/:id", h.DeleteRoom, auth.RequireCapability(access.CanManageRooms))

	// Beds are read-only over the API.
	api.GET("/beds", h.ListBeds)
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

// -- Admission Handlers --

func (h *Handler) ListAdmissions(c echo.Context) error {
	admissions, err := h.svc.ListAdmissions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, admissions)
}

func (h *Handler) GetAdmission(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	a, err := h.svc.GetAdmission(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) CreateAdmission(c echo.Context) error {
	var a Admission
	if err := c.Bind(&a); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreateAdmission(c.Request().Context(), &a); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":     true,
		"AdmissionID": a.AdmissionID,
		"message":     "Admission added successfully",
	})
}

func (h *Handler) UpdateAdmission(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var a Admission
	if err := c.Bind(&a); err != nil {
		return jsonError(c, err)
	}
	a.AdmissionID = id
	if err := h.svc.UpdateAdmission(c.Request().Context(), &a); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Admission updated successfully",
	})
}

func (h *Handler) DeleteAdmission(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeleteAdmission(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Admission deleted successfully",
	})
}

// -- Room Handlers --

func (h *Handler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) GetRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	r, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var r Room
	if err := c.Bind(&r); err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.CreateRoom(c.Request().Context(), &r); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"RoomID":  r.RoomID,
		"message": "Room added successfully",
	})
}

func (h *Handler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	var r Room
	if err := c.Bind(&r); err != nil {
		return jsonError(c, err)
	}
	r.RoomID = id
	if err := h.svc.UpdateRoom(c.Request().Context(), &r); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Room updated successfully",
	})
}

func (h *Handler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Room deleted successfully",
	})
}

// -- Bed Handlers --

func (h *Handler) ListBeds(c echo.Context) error {
	beds, err := h.svc.ListBeds(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, beds)
}
