package chat

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
)

// Handler exposes the chat endpoints. Both verify patient ownership through
// the patient service before touching the thread.
type Handler struct {
	svc      *Service
	patients *patient.Service
}

func NewHandler(svc *Service, patients *patient.Service) *Handler {
	return &Handler{svc: svc, patients: patients}
}

// RegisterRoutes mounts the chat routes on the given (protected) group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/chat", h.History)
	g.POST("/chat", h.Send)
}

type historyResponse struct {
	Patient  *patient.Patient `json:"patient"`
	Messages []*Message       `json:"messages"`
}

func (h *Handler) History(c echo.Context) error {
	ownerID := auth.UserIDFromContext(c.Request().Context())

	patientID, err := uuid.Parse(c.QueryParam("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "valid patientId is required")
	}

	p, err := h.patients.GetByID(c.Request().Context(), ownerID, patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load patient").SetInternal(err)
	}
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}

	messages, err := h.svc.History(c.Request().Context(), ownerID, patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load chat history").SetInternal(err)
	}

	return c.JSON(http.StatusOK, historyResponse{Patient: p, Messages: messages})
}

type sendRequest struct {
	PatientID string `json:"patientId"`
	Message   string `json:"message"`
}

func (h *Handler) Send(c echo.Context) error {
	ownerID := auth.UserIDFromContext(c.Request().Context())

	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "valid patientId is required")
	}

	p, err := h.patients.GetByID(c.Request().Context(), ownerID, patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load patient").SetInternal(err)
	}
	if p == nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}

	reply, err := h.svc.Send(c.Request().Context(), ownerID, patientID, req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			return echo.NewHTTPError(http.StatusBadRequest, "message is required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to send message").SetInternal(err)
	}

	return c.JSON(http.StatusOK, reply)
}
