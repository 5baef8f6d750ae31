package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/eventflow-dev/eventflow/internal/client/api"
	"github.com/eventflow-dev/eventflow/internal/client/session"
	"github.com/eventflow-dev/eventflow/internal/logging"
)

// ---- fake API service ----

type fakeService struct {
	loginToken string
	loginErr   error

	registerRet *session.User
	registerErr error

	events    []api.Event
	eventsErr error
	// eventsHook runs inside ListEvents, before it returns; used to
	// simulate state changing while a request is in flight.
	eventsHook func()

	event    *api.Event
	eventErr error

	createdEvent   *api.Event
	createEventIn  api.Event
	updateEventIn  api.Event
	deletedEventID int

	venues      []api.Venue
	createdVen  *api.Venue
	createVenIn api.Venue

	signupErr     error
	lastSignupEv  int
	lastSignupUsr int

	userRegs []api.RegistrationDetails
	orgEvts  []api.Event
	evRegs   []api.RegistrationDetails

	calls []string
}

func (f *fakeService) Register(_ context.Context, user api.NewUser) (*session.User, error) {
	f.calls = append(f.calls, "Register")
	return f.registerRet, f.registerErr
}

func (f *fakeService) Login(_ context.Context, creds api.Credentials) (string, error) {
	f.calls = append(f.calls, "Login")
	return f.loginToken, f.loginErr
}

func (f *fakeService) ListEvents(context.Context) ([]api.Event, error) {
	f.calls = append(f.calls, "ListEvents")
	if f.eventsHook != nil {
		f.eventsHook()
	}
	return f.events, f.eventsErr
}

func (f *fakeService) GetEvent(_ context.Context, id int) (*api.Event, error) {
	f.calls = append(f.calls, "GetEvent")
	return f.event, f.eventErr
}

func (f *fakeService) CreateEvent(_ context.Context, event api.Event) (*api.Event, error) {
	f.calls = append(f.calls, "CreateEvent")
	f.createEventIn = event
	return f.createdEvent, nil
}

func (f *fakeService) UpdateEvent(_ context.Context, id int, event api.Event) (*api.Event, error) {
	f.calls = append(f.calls, "UpdateEvent")
	f.updateEventIn = event
	updated := event
	updated.EventID = id
	return &updated, nil
}

func (f *fakeService) DeleteEvent(_ context.Context, id int) error {
	f.calls = append(f.calls, "DeleteEvent")
	f.deletedEventID = id
	return nil
}

func (f *fakeService) ListVenues(context.Context) ([]api.Venue, error) {
	f.calls = append(f.calls, "ListVenues")
	return f.venues, nil
}

func (f *fakeService) CreateVenue(_ context.Context, venue api.Venue) (*api.Venue, error) {
	f.calls = append(f.calls, "CreateVenue")
	f.createVenIn = venue
	return f.createdVen, nil
}

func (f *fakeService) RegisterForEvent(_ context.Context, eventID, userID int) error {
	f.calls = append(f.calls, "RegisterForEvent")
	f.lastSignupEv, f.lastSignupUsr = eventID, userID
	return f.signupErr
}

func (f *fakeService) ListUserRegistrations(_ context.Context, userID int) ([]api.RegistrationDetails, error) {
	f.calls = append(f.calls, "ListUserRegistrations")
	return f.userRegs, nil
}

func (f *fakeService) ListOrganizerEvents(context.Context) ([]api.Event, error) {
	f.calls = append(f.calls, "ListOrganizerEvents")
	return f.orgEvts, nil
}

func (f *fakeService) ListEventRegistrations(_ context.Context, eventID int) ([]api.RegistrationDetails, error) {
	f.calls = append(f.calls, "ListEventRegistrations")
	return f.evRegs, nil
}

// ---- session collaborator fakes ----

type fakeLookup struct {
	user *session.User
	err  error
}

func (f *fakeLookup) GetUser(context.Context, int) (*session.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *f.user
	return &u, nil
}

type memStorage struct{ snap *session.Snapshot }

func (m *memStorage) Save(_ context.Context, snap session.Snapshot) error {
	m.snap = &snap
	return nil
}

func (m *memStorage) Load(context.Context) (session.Snapshot, bool, error) {
	if m.snap == nil {
		return session.Snapshot{}, false, nil
	}
	return *m.snap, true, nil
}

// ---- helpers ----

func makeToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestApp(t *testing.T, svc *fakeService, lookup session.UserLookup) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	a := &App{
		log:    logger,
		api:    svc,
		fence:  &fence{},
		reader: bufio.NewReader(strings.NewReader("")),
		out:    out,
	}
	a.session = session.NewStore(lookup, &memStorage{}, logger)
	return a, out
}

func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGI, origGP := getSimpleText, getInt, getPassword
	t.Cleanup(func() {
		getSimpleText, getInt, getPassword = origST, origGI, origGP
	})

	i := 0
	next := func() string {
		if i >= len(answers) {
			return ""
		}
		a := answers[i]
		i++
		return a
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getInt = func(r *bufio.Reader, p string, w io.Writer) (int, error) {
		n, err := strconv.Atoi(next())
		require.NoError(t, err, "non-numeric stub answer")
		return n, nil
	}
	getPassword = func(io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
}

// loginAs authenticates the app's session using whatever user the store's
// lookup resolves. The token subject must match the lookup's user id.
func loginAs(t *testing.T, a *App, userID string) {
	t.Helper()
	require.NoError(t, a.session.Login(context.Background(), makeToken(t, userID)))
	require.True(t, a.session.IsAuthenticated())
}
