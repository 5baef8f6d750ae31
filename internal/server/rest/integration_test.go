package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflow-dev/eventflow/internal/client/api"
	"github.com/eventflow-dev/eventflow/internal/client/guard"
	"github.com/eventflow-dev/eventflow/internal/client/session"
	"github.com/eventflow-dev/eventflow/internal/logging"
	"github.com/eventflow-dev/eventflow/internal/server/auth"
	"github.com/eventflow-dev/eventflow/internal/server/registrations"
	"github.com/eventflow-dev/eventflow/internal/server/users"
)

// memSnapshots is an in-memory session.Storage for composed-client tests.
type memSnapshots struct {
	snap  session.Snapshot
	saved bool
}

func (m *memSnapshots) Save(_ context.Context, snap session.Snapshot) error {
	m.snap, m.saved = snap, true
	return nil
}

func (m *memSnapshots) Load(context.Context) (session.Snapshot, bool, error) {
	return m.snap, m.saved, nil
}

// clientHarness wires the real api.Client and session.Store the same way
// the cmd/client binary does: the client reads the live token from the
// store, the store resolves profiles through the client.
type clientHarness struct {
	store   *session.Store
	notices []string
	logouts int
}

func (h *clientHarness) Token() string     { return h.store.Token() }
func (h *clientHarness) Notify(msg string) { h.notices = append(h.notices, msg) }

func newClientHarness(t *testing.T, s *Server) (*clientHarness, *api.Client, func()) {
	t.Helper()

	ts := httptest.NewServer(s.Router())

	h := &clientHarness{}
	apiClient := api.New(ts.URL+"/api", h, h, func() {
		h.logouts++
		h.store.Logout(context.Background())
	})
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.store = session.NewStore(apiClient, &memSnapshots{}, log)

	return h, apiClient, ts.Close
}

// The full login sequence against the real router: exchange credentials
// for a token, then install it in the session store. The store's profile
// fetch runs before the token is applied, so the profile route must answer
// without a bearer for login to ever complete.
func TestLoginFlow_ComposedClientAndRouter(t *testing.T) {
	token, err := auth.GenerateToken(42, "organizer", testSecret, time.Hour)
	require.NoError(t, err)

	s := newTestServer(&fakeUsers{
		token: token,
		user:  &users.User{ID: 42, FullName: "Olga Ferrer", Email: "olga@example.com", Role: "organizer"},
	}, nil, nil, nil)

	h, apiClient, done := newClientHarness(t, s)
	defer done()

	ctx := context.Background()

	got, err := apiClient.Login(ctx, api.Credentials{Email: "olga@example.com", Password: "pa55word8"})
	require.NoError(t, err)
	require.Equal(t, token, got)

	require.NoError(t, h.store.Login(ctx, got))

	snap := h.store.Current()
	require.True(t, snap.IsAuthenticated)
	require.NotNil(t, snap.User)
	assert.Equal(t, 42, snap.User.ID)
	assert.Equal(t, session.RoleOrganizer, snap.User.Role)

	// No spurious transport notices and no forced logout along the way.
	assert.Empty(t, h.notices)
	assert.Zero(t, h.logouts)

	assert.Equal(t, guard.Allow,
		guard.Check(snap, []session.Role{session.RoleOrganizer}))
}

func TestLoginFlow_ForcedLogoutOn401(t *testing.T) {
	s := newTestServer(&fakeUsers{
		user: &users.User{ID: 42, FullName: "Olga Ferrer", Email: "olga@example.com", Role: "organizer"},
	}, nil, nil, nil)

	h, apiClient, done := newClientHarness(t, s)
	defer done()

	ctx := context.Background()

	// A token the server will reject still decodes locally, so the store
	// accepts it; the first protected call then collapses the session
	// through the 401 hook.
	badToken, err := auth.GenerateToken(42, "organizer", []byte("other-secret"), time.Hour)
	require.NoError(t, err)
	require.NoError(t, h.store.Login(ctx, badToken))

	_, err = apiClient.ListOrganizerEvents(ctx)
	require.ErrorIs(t, err, api.ErrUnauthorized)

	assert.Equal(t, 1, h.logouts)
	assert.False(t, h.store.IsAuthenticated())
	assert.Contains(t, h.notices, api.NoticeSessionExpired)
}

// Every field of the client's registration model must round-trip through
// the server's roster payload.
func TestUserRegistrations_WireShape(t *testing.T) {
	fr := &fakeRegs{byUser: []registrations.Details{{
		RegistrationID: 7,
		EventID:        3,
		Title:          "GopherCon",
		Description:    "Two days of Go talks",
		EventDate:      "2026-04-01",
		UserID:         42,
		FullName:       "Olga Ferrer",
		Email:          "olga@example.com",
		RegisteredAt:   time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}}}
	s := newTestServer(&fakeUsers{
		user: &users.User{ID: 42, FullName: "Olga Ferrer", Email: "olga@example.com", Role: "attendee"},
	}, nil, nil, fr)

	h, apiClient, done := newClientHarness(t, s)
	defer done()

	ctx := context.Background()
	token, err := auth.GenerateToken(42, "attendee", testSecret, time.Hour)
	require.NoError(t, err)
	require.NoError(t, h.store.Login(ctx, token))

	regs, err := apiClient.ListUserRegistrations(ctx, 42)
	require.NoError(t, err)
	require.Len(t, regs, 1)

	want := api.RegistrationDetails{
		RegID:        7,
		RegisteredAt: "2026-03-14T10:30:00Z",
		EventID:      3,
		Title:        "GopherCon",
		Description:  "Two days of Go talks",
		EventDate:    "2026-04-01",
		UserID:       42,
		FullName:     "Olga Ferrer",
		Email:        "olga@example.com",
	}
	assert.Equal(t, want, regs[0])
}
