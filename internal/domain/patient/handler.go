package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
	"github.com/clinicdesk/clinicdesk/pkg/pagination"
)

// Handler exposes the patient CRUD endpoints. All routes require an
// authenticated caller.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient routes on the given (protected) group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/patients", h.Create)
	g.GET("/patients", h.List)
	g.PUT("/patients/:id", h.Update)
	g.DELETE("/patients/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	ownerID := auth.UserIDFromContext(c.Request().Context())

	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := h.svc.Create(c.Request().Context(), ownerID, in)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			return echo.NewHTTPError(http.StatusBadRequest, "name is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create patient").SetInternal(err)
	}

	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) List(c echo.Context) error {
	ownerID := auth.UserIDFromContext(c.Request().Context())
	params := pagination.FromContext(c)

	result, err := h.svc.List(c.Request().Context(), ownerID, params.Page, params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list patients").SetInternal(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Update(c echo.Context) error {
	ownerID := auth.UserIDFromContext(c.Request().Context())

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	p, err := h.svc.Update(c.Request().Context(), ownerID, id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update patient").SetInternal(err)
	}

	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c echo.Context) error {
	ownerID := auth.UserIDFromContext(c.Request().Context())

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	if err := h.svc.Delete(c.Request().Context(), ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete patient").SetInternal(err)
	}

	return c.NoContent(http.StatusNoContent)
}
