package handlers

import (
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"wycena/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// testSessionID is the draft session used by handler tests.
const testSessionID = "handler-test-session"

// withSession attaches the draft session cookie to a request.
func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: testSessionID})
	return req
}

// createDraftRoom seeds a room into the test session's draft and returns
// its id.
func createDraftRoom(drafts *Drafts, name string) string {
	var roomID string
	drafts.Update(testSessionID, func(s services.State) services.State {
		s, roomID = s.CreateRoom(name)
		return s
	})
	return roomID
}

// draftRoom fetches a room snapshot from the test session's draft.
func draftRoom(drafts *Drafts, roomID string) (services.Room, bool) {
	return drafts.Get(testSessionID).RoomByID(roomID)
}
