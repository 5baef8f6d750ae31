package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/eventflow-dev/eventflow/internal/logging"
)

// UserLookup resolves a full user profile for the subject id embedded in a
// token. The API client satisfies this interface.
type UserLookup interface {
	GetUser(ctx context.Context, id int) (*User, error)
}

// Storage persists the session snapshot between runs. Load reports ok=false
// when no snapshot has been saved yet.
type Storage interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (snap Snapshot, ok bool, err error)
}

// Store is the authenticated-session store.
//
// It has two states: logged out (initial) and logged in. Login moves to
// logged in only when both token decoding and profile resolution succeed;
// any failure collapses the store to logged out, so a token is never held
// without a resolved user and vice versa.
//
// Overlapping Login calls are not coordinated beyond last-writer-wins on
// the final state transition.
type Store struct {
	mu      sync.RWMutex
	snap    Snapshot
	nextSub int
	subs    map[int]func(Snapshot)

	users   UserLookup
	storage Storage
	log     logging.Logger
}

func NewStore(users UserLookup, storage Storage, log logging.Logger) *Store {
	return &Store{
		users:   users,
		storage: storage,
		log:     log,
		subs:    make(map[int]func(Snapshot)),
	}
}

// Restore rehydrates the store from persisted storage. A snapshot that
// violates the token-and-user invariant is discarded rather than applied.
func (s *Store) Restore(ctx context.Context) {
	snap, ok, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if !ok {
		return
	}
	if snap.Token == "" || snap.User == nil {
		snap = Snapshot{}
	}
	snap.IsAuthenticated = snap.Token != "" && snap.User != nil

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Login decodes the token locally to extract the subject id, resolves the
// full profile through the lookup collaborator and, on success, atomically
// installs token and user. On any failure the store transitions to logged
// out and the error is returned for user-facing reporting.
func (s *Store) Login(ctx context.Context, token string) error {
	id, err := SubjectID(token)
	if err != nil {
		s.apply(ctx, Snapshot{})
		return err
	}

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		s.apply(ctx, Snapshot{})
		return fmt.Errorf("%w: %w", ErrProfileFetch, err)
	}

	s.apply(ctx, Snapshot{Token: token, User: user, IsAuthenticated: true})
	return nil
}

// Logout unconditionally clears the session. It never fails; a persistence
// error is logged and swallowed.
func (s *Store) Logout(ctx context.Context) {
	s.apply(ctx, Snapshot{})
}

// UpdateUser shallow-merges the patch into the current user without
// touching the token. Calling it with no logged-in user is rejected with
// ErrNotAuthenticated instead of fabricating a patch-only profile.
func (s *Store) UpdateUser(ctx context.Context, patch UserPatch) error {
	s.mu.Lock()
	if s.snap.User == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}

	next := s.snap.clone()
	if patch.FullName != nil {
		next.User.FullName = *patch.FullName
	}
	if patch.Email != nil {
		next.User.Email = *patch.Email
	}
	if patch.Role != nil {
		next.User.Role = *patch.Role
	}
	s.mu.Unlock()

	s.apply(ctx, next)
	return nil
}

// Current returns a copy of the session state.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

// Token returns the live bearer token, empty when logged out. The transport
// layer reads it just before dispatching each request.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.IsAuthenticated
}

// Subscribe registers fn to be called after every state transition. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// apply installs the new state, persists it and notifies subscribers.
// The in-memory transition is completed before the persistence write, so a
// storage failure never leaves a partial state.
func (s *Store) apply(ctx context.Context, snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if err := s.storage.Save(ctx, snap); err != nil {
		s.log.Warn(ctx, "session persist failed", "error", err)
	}

	for _, fn := range subs {
		fn(snap.clone())
	}
}
