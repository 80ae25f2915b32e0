package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/internal/domain/patient"
	"github.com/clinicdesk/clinicdesk/internal/platform/auth"
)

type mockPatientRepo struct {
	rows map[uuid.UUID]*patient.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{rows: make(map[uuid.UUID]*patient.Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *patient.Patient) error {
	stored := *p
	m.rows[p.ID] = &stored
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, ownerID, id uuid.UUID) (*patient.Patient, error) {
	p, ok := m.rows[id]
	if !ok || p.UserID != ownerID {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (m *mockPatientRepo) List(_ context.Context, _ uuid.UUID, _, _ int) ([]*patient.Patient, int, error) {
	return nil, 0, nil
}

func (m *mockPatientRepo) Update(_ context.Context, _ *patient.Patient) error {
	return patient.ErrNotFound
}

func (m *mockPatientRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return patient.ErrNotFound
}

type fixture struct {
	handler   *Handler
	owner     uuid.UUID
	patientID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	patientRepo := newMockPatientRepo()
	patients := patient.NewService(patientRepo)

	owner := uuid.New()
	p, err := patients.Create(context.Background(), owner, patient.Input{Name: "Jane Doe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &fixture{
		handler:   NewHandler(NewService(newMockRepo()), patients),
		owner:     owner,
		patientID: p.ID,
	}
}

func authedRequest(e *echo.Echo, method, target string, body io.Reader, ownerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, ownerID))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerSend_ReturnsAssistantReply(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	body := `{"patientId":"` + f.patientID.String() + `","message":"My tooth hurts"}`
	c, rec := authedRequest(e, http.MethodPost, "/chat", strings.NewReader(body), f.owner)
	if err := f.handler.Send(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var reply Message
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if reply.Role != RoleAssistant || reply.Content != AssistantReply {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestHandlerSend_UnknownPatient(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	body := `{"patientId":"` + uuid.New().String() + `","message":"hello"}`
	c, _ := authedRequest(e, http.MethodPost, "/chat", strings.NewReader(body), f.owner)
	err := f.handler.Send(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandlerSend_ForeignOwner(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	body := `{"patientId":"` + f.patientID.String() + `","message":"hello"}`
	c, _ := authedRequest(e, http.MethodPost, "/chat", strings.NewReader(body), uuid.New())
	err := f.handler.Send(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for another owner's patient, got %v", err)
	}
}

func TestHandlerSend_MissingPatientID(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	c, _ := authedRequest(e, http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`), f.owner)
	err := f.handler.Send(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerSend_EmptyMessage(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	body := `{"patientId":"` + f.patientID.String() + `","message":"  "}`
	c, _ := authedRequest(e, http.MethodPost, "/chat", strings.NewReader(body), f.owner)
	err := f.handler.Send(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerHistory_ReturnsPatientAndThread(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	body := `{"patientId":"` + f.patientID.String() + `","message":"My tooth hurts"}`
	c, _ := authedRequest(e, http.MethodPost, "/chat", strings.NewReader(body), f.owner)
	if err := f.handler.Send(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := authedRequest(e, http.MethodGet, "/chat?patientId="+f.patientID.String(), nil, f.owner)
	if err := f.handler.History(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp historyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Patient == nil || resp.Patient.ID != f.patientID {
		t.Errorf("unexpected patient in response: %+v", resp.Patient)
	}
	if len(resp.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(resp.Messages))
	}
}

func TestHandlerHistory_MissingPatientID(t *testing.T) {
	e := echo.New()
	f := newFixture(t)

	c, _ := authedRequest(e, http.MethodGet, "/chat", nil, f.owner)
	err := f.handler.History(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
