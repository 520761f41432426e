package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"wycena/testhelpers"
)

func TestHandleRoomRename_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := NewDrafts()
	roomID := createDraftRoom(drafts, "Salon")
	handler := HandleRoomRename(app, drafts)

	form := url.Values{}
	form.Set("name", "Salon z aneksem")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/rooms/%s/name", roomID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("roomId", roomID)
	req = withSession(req)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	room, _ := draftRoom(drafts, roomID)
	if room.Name != "Salon z aneksem" {
		t.Errorf("room name = %q, want %q", room.Name, "Salon z aneksem")
	}
}

func TestHandleRoomRename_EmptyName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := NewDrafts()
	roomID := createDraftRoom(drafts, "Salon")
	handler := HandleRoomRename(app, drafts)

	form := url.Values{}
	form.Set("name", "   ")
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/rooms/%s/name", roomID), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("roomId", roomID)
	req = withSession(req)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank name, got %d", rec.Code)
	}

	room, _ := draftRoom(drafts, roomID)
	if room.Name != "Salon" {
		t.Errorf("room name changed to %q on rejected rename", room.Name)
	}
}
