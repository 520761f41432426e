package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wycena/testhelpers"
)

func TestHandleRoomDelete_RemovesRoom(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := NewDrafts()
	roomID := createDraftRoom(drafts, "Salon")
	handler := HandleRoomDelete(app, drafts)

	req := withSession(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/rooms/%s", roomID), nil))
	req.SetPathValue("roomId", roomID)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if _, ok := draftRoom(drafts, roomID); ok {
		t.Error("expected room to be deleted from draft")
	}
}

func TestHandleRoomDelete_UnknownRoomIsNoOp(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := NewDrafts()
	createDraftRoom(drafts, "Salon")
	handler := HandleRoomDelete(app, drafts)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/rooms/missing", nil))
	req.SetPathValue("roomId", "missing")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for idempotent delete, got %d", rec.Code)
	}
	if len(drafts.Get(testSessionID).Rooms) != 1 {
		t.Error("existing room must survive a delete of an unknown id")
	}
}

func TestHandleRoomDelete_MissingID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	drafts := NewDrafts()
	handler := HandleRoomDelete(app, drafts)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/rooms/", nil))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
