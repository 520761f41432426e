package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"wycena/services"
	"wycena/testhelpers"
)

// saveQuoteRequest builds an authenticated save request for the test draft.
func saveQuoteRequest(name string) (*http.Request, *httptest.ResponseRecorder) {
	form := url.Values{}
	form.Set("name", name)
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return withSession(req), httptest.NewRecorder()
}

func TestHandleQuoteSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "saver@example.com")
	drafts := NewDrafts()
	createDraftRoom(drafts, "Salon")
	handler := HandleQuoteSave(app, drafts)

	req, rec := saveQuoteRequest("Mieszkanie Kwiatowa")
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		QuoteID string `json:"quoteId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.QuoteID == "" {
		t.Fatal("expected quoteId in response")
	}

	// Record lands in the quotes collection, owned by the caller
	record, err := app.FindRecordById("quotes", resp.QuoteID)
	if err != nil {
		t.Fatalf("saved quote not found: %v", err)
	}
	if record.GetString("user") != user.Id {
		t.Errorf("quote owner = %q, want %q", record.GetString("user"), user.Id)
	}
	if record.GetString("name") != "Mieszkanie Kwiatowa" {
		t.Errorf("quote name = %q", record.GetString("name"))
	}

	var rooms []services.Room
	if err := record.UnmarshalJSONField("data", &rooms); err != nil {
		t.Fatalf("bad data payload: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Salon" {
		t.Errorf("persisted rooms = %+v", rooms)
	}

	// The draft now carries the saved identity
	state := drafts.Get(testSessionID)
	if state.QuoteID != resp.QuoteID || state.QuoteName != "Mieszkanie Kwiatowa" {
		t.Errorf("draft identity = %q/%q", state.QuoteID, state.QuoteName)
	}
}

func TestHandleQuoteSave_Unauthenticated(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := NewDrafts()
	createDraftRoom(drafts, "Salon")
	handler := HandleQuoteSave(app, drafts)

	req, rec := saveQuoteRequest("Mieszkanie")
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleQuoteSave_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "noname@example.com")
	drafts := NewDrafts()
	createDraftRoom(drafts, "Salon")
	handler := HandleQuoteSave(app, drafts)

	req, rec := saveQuoteRequest("  ")
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	// A rejected save must not touch the draft identity
	if drafts.Get(testSessionID).QuoteID != "" {
		t.Error("draft identity changed on failed save")
	}
}

func TestHandleQuoteUpdate_OverwritesOwnQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := testhelpers.CreateTestUser(t, app, "updater@example.com")
	quote := testhelpers.CreateTestQuote(t, app, user.Id, "Stara nazwa", []services.Room{}, 23)

	drafts := NewDrafts()
	createDraftRoom(drafts, "Salon")
	drafts.Update(testSessionID, func(s services.State) services.State {
		return s.SetVatRate(8)
	})
	handler := HandleQuoteUpdate(app, drafts)

	form := url.Values{}
	form.Set("name", "Nowa nazwa")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/quotes/%s", quote.Id), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", quote.Id)
	req = withSession(req)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = user

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	record, _ := app.FindRecordById("quotes", quote.Id)
	if record.GetString("name") != "Nowa nazwa" {
		t.Errorf("name = %q, want 'Nowa nazwa'", record.GetString("name"))
	}
	if record.GetInt("vat_rate") != 8 {
		t.Errorf("vat_rate = %d, want 8", record.GetInt("vat_rate"))
	}
	var rooms []services.Room
	record.UnmarshalJSONField("data", &rooms)
	if len(rooms) != 1 {
		t.Errorf("expected 1 room in updated quote, got %d", len(rooms))
	}
}

func TestHandleQuoteUpdate_OtherUsersQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	owner := testhelpers.CreateTestUser(t, app, "owner@example.com")
	intruder := testhelpers.CreateTestUser(t, app, "intruder@example.com")
	quote := testhelpers.CreateTestQuote(t, app, owner.Id, "Cudza wycena", []services.Room{}, 23)

	drafts := NewDrafts()
	handler := HandleQuoteUpdate(app, drafts)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/quotes/%s", quote.Id), nil)
	req.SetPathValue("id", quote.Id)
	req = withSession(req)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	e.Auth = intruder

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Other users' quotes look like they don't exist
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	record, _ := app.FindRecordById("quotes", quote.Id)
	if record.GetString("name") != "Cudza wycena" {
		t.Error("foreign quote was modified")
	}
}
