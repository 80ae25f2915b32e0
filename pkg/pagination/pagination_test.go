package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paramsFor(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return FromContext(e.NewContext(req, rec))
}

func TestFromContext_Defaults(t *testing.T) {
	p := paramsFor(t, "")
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestFromContext_ClampsLimit(t *testing.T) {
	p := paramsFor(t, "page=2&limit=500")
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}

	p = paramsFor(t, "limit=-3")
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit for negative value, got %d", p.Limit)
	}
}

func TestFromContext_FloorsPage(t *testing.T) {
	p := paramsFor(t, "page=0")
	if p.Page != 1 {
		t.Errorf("expected page floored to 1, got %d", p.Page)
	}

	p = paramsFor(t, "page=garbage")
	if p.Page != 1 {
		t.Errorf("expected page 1 for unparseable value, got %d", p.Page)
	}
}

func TestParams_Offset(t *testing.T) {
	p := Params{Page: 1, Limit: 10}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}

	p = Params{Page: 3, Limit: 25}
	if p.Offset() != 50 {
		t.Errorf("expected offset 50, got %d", p.Offset())
	}
}

func TestParams_HasNext(t *testing.T) {
	p := Params{Page: 1, Limit: 10}
	if !p.HasNext(11) {
		t.Error("expected HasNext for total 11")
	}
	if p.HasNext(10) {
		t.Error("did not expect HasNext for total 10")
	}
}

func TestClamp(t *testing.T) {
	p := Clamp(0, 0)
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Errorf("expected defaults, got page=%d limit=%d", p.Page, p.Limit)
	}

	p = Clamp(5, 1000)
	if p.Page != 5 || p.Limit != MaxLimit {
		t.Errorf("expected page 5 limit %d, got page=%d limit=%d", MaxLimit, p.Page, p.Limit)
	}
}
