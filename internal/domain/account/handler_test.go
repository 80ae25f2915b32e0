package account

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerRegister_Created(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), testSecret))

	c, rec := postJSON(e, "/auth/register", `{"email":"doc@example.com","password":"s3cret","name":"Dr. Smith"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var u User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if u.Email != "doc@example.com" {
		t.Errorf("unexpected email %q", u.Email)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response leaks password hash")
	}
}

func TestHandlerRegister_MissingFields(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), testSecret))

	c, _ := postJSON(e, "/auth/register", `{"email":"doc@example.com"}`)
	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandlerRegister_DuplicateEmail(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), testSecret))

	c, _ := postJSON(e, "/auth/register", `{"email":"doc@example.com","password":"s3cret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ = postJSON(e, "/auth/register", `{"email":"doc@example.com","password":"other"}`)
	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Errorf("expected 409, got %v", err)
	}
}

func TestHandlerLogin_Success(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), testSecret))

	c, _ := postJSON(e, "/auth/register", `{"email":"doc@example.com","password":"s3cret"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, rec := postJSON(e, "/auth/login", `{"email":"doc@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result LoginResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token in the response")
	}
	if result.User.Email != "doc@example.com" {
		t.Errorf("unexpected user email %q", result.User.Email)
	}
}

func TestHandlerLogin_BadCredentials(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), testSecret))

	c, _ := postJSON(e, "/auth/login", `{"email":"nobody@example.com","password":"s3cret"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestHandlerLogin_MissingFields(t *testing.T) {
	e := echo.New()
	h := NewHandler(NewService(newMockRepo(), testSecret))

	c, _ := postJSON(e, "/auth/login", `{"password":"s3cret"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
