package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wycena/testhelpers"
)

func TestHandleQuoteDelete_RemovesOwnQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "deleter@example.com")
	quote := testhelpers.CreateTestQuote(t, app, user.Id, "Do usunięcia", nil, 23)

	handler := HandleQuoteDelete(app)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/quotes/%s", quote.Id), nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, err := app.FindRecordById("quotes", quote.Id); err == nil {
		t.Error("quote still exists after delete")
	}
}

func TestHandleQuoteDelete_OtherUsersQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	owner := testhelpers.CreateTestUser(t, app, "owner3@example.com")
	intruder := testhelpers.CreateTestUser(t, app, "intruder3@example.com")
	quote := testhelpers.CreateTestQuote(t, app, owner.Id, "Nie twoja", nil, 23)

	handler := HandleQuoteDelete(app)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/quotes/%s", quote.Id), nil)
	req.SetPathValue("id", quote.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = intruder

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("quotes", quote.Id); err != nil {
		t.Error("foreign quote was deleted")
	}
}

func TestHandleQuoteDelete_Unauthenticated(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/api/quotes/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
