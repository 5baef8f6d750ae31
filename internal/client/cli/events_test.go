package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflow-dev/eventflow/internal/client/api"
	"github.com/eventflow-dev/eventflow/internal/client/session"
)

func TestEvents_ListsAndCaches(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{events: []api.Event{
		{EventID: 1, Title: "GopherCon", EventDate: "2026-09-10", Venue: &api.Venue{Name: "Expo Hall", Location: "Berlin"}},
		{EventID: 2, Title: "Meetup", EventDate: "2026-10-01"},
	}}
	a, out := newTestApp(t, svc, &fakeLookup{user: &session.User{}})

	require.NoError(t, a.Events(ctx))

	assert.Len(t, a.cachedEvents, 2)
	assert.Contains(t, out.String(), "#1 GopherCon")
	assert.Contains(t, out.String(), "@ Expo Hall (Berlin)")
	assert.Contains(t, out.String(), "#2 Meetup")
}

func TestEvents_StaleResponseDiscarded(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{events: []api.Event{{EventID: 1, Title: "Old"}}}
	a, out := newTestApp(t, svc, &fakeLookup{user: &session.User{}})

	// The session is invalidated while the request is in flight; the
	// response that eventually arrives must not become view state.
	svc.eventsHook = func() { a.fence.Invalidate() }

	require.NoError(t, a.Events(ctx))

	assert.Nil(t, a.cachedEvents)
	assert.NotContains(t, out.String(), "Old")
}

func TestShow(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{event: &api.Event{
		EventID:     5,
		Title:       "Workshop",
		Description: "Hands-on generics.",
		EventDate:   "2026-11-20",
		Venue:       &api.Venue{Name: "Lab", Location: "Room 4", Capacity: 30},
	}}
	a, out := newTestApp(t, svc, &fakeLookup{user: &session.User{}})

	require.NoError(t, a.Show(ctx, 5))

	assert.Contains(t, out.String(), "Workshop")
	assert.Contains(t, out.String(), "Hands-on generics.")
	assert.Contains(t, out.String(), "Capacity: 30")
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{createdEvent: &api.Event{EventID: 9}}
	user := &session.User{ID: 3, Role: session.RoleOrganizer}
	a, out := newTestApp(t, svc, &fakeLookup{user: user})
	loginAs(t, a, "3")

	stubInputs(t, []string{"Launch", "Product launch.", "2026-12-01", "4"}, nil)

	require.NoError(t, a.CreateEvent(ctx))

	assert.Equal(t, "Launch", svc.createEventIn.Title)
	assert.Equal(t, "2026-12-01", svc.createEventIn.EventDate)
	assert.Equal(t, 4, svc.createEventIn.VenueID)
	assert.Contains(t, out.String(), "Created event #9")
}

func TestEditEvent_EmptyAnswersKeepCurrent(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{event: &api.Event{
		EventID: 5, Title: "Workshop", Description: "Original.", EventDate: "2026-11-20", VenueID: 2,
	}}
	user := &session.User{ID: 3, Role: session.RoleOrganizer}
	a, out := newTestApp(t, svc, &fakeLookup{user: user})
	loginAs(t, a, "3")

	stubInputs(t, []string{"Workshop v2", "", ""}, nil)

	require.NoError(t, a.EditEvent(ctx, 5))

	assert.Equal(t, "Workshop v2", svc.updateEventIn.Title)
	assert.Equal(t, "Original.", svc.updateEventIn.Description)
	assert.Equal(t, "2026-11-20", svc.updateEventIn.EventDate)
	assert.Equal(t, 2, svc.updateEventIn.VenueID)
	assert.Contains(t, out.String(), "Updated event #5")
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{}
	user := &session.User{ID: 3, Role: session.RoleOrganizer}
	a, out := newTestApp(t, svc, &fakeLookup{user: user})
	loginAs(t, a, "3")

	require.NoError(t, a.DeleteEvent(ctx, 7))
	assert.Equal(t, 7, svc.deletedEventID)
	assert.Contains(t, out.String(), "Deleted event #7")
}

func TestCreateVenue(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{createdVen: &api.Venue{VenueID: 4}}
	user := &session.User{ID: 3, Role: session.RoleOrganizer}
	a, out := newTestApp(t, svc, &fakeLookup{user: user})
	loginAs(t, a, "3")

	stubInputs(t, []string{"Expo Hall", "Berlin", "500"}, nil)

	require.NoError(t, a.CreateVenue(ctx))

	assert.Equal(t, "Expo Hall", svc.createVenIn.Name)
	assert.Equal(t, 500, svc.createVenIn.Capacity)
	assert.Contains(t, out.String(), "Created venue #4")
}

func TestMyRegistrations(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{userRegs: []api.RegistrationDetails{
		{EventID: 1, Title: "GopherCon", EventDate: "2026-09-10", RegisteredAt: "2026-08-01"},
	}}
	user := &session.User{ID: 8, Role: session.RoleAttendee}
	a, out := newTestApp(t, svc, &fakeLookup{user: user})
	loginAs(t, a, "8")

	require.NoError(t, a.MyRegistrations(ctx))
	assert.Contains(t, out.String(), "GopherCon")
	assert.Contains(t, out.String(), "registered 2026-08-01")
}

func TestRoster(t *testing.T) {
	ctx := context.Background()

	svc := &fakeService{evRegs: []api.RegistrationDetails{
		{FullName: "Ann", Email: "ann@example.com", RegisteredAt: "2026-08-02"},
	}}
	user := &session.User{ID: 3, Role: session.RoleOrganizer}
	a, out := newTestApp(t, svc, &fakeLookup{user: user})
	loginAs(t, a, "3")

	require.NoError(t, a.Roster(ctx, 1))
	assert.Contains(t, out.String(), "Ann <ann@example.com>")
}
