package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflow-dev/eventflow/internal/common"
)

type fakeRepo struct {
	events map[int]*Event
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[int]*Event{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, event *Event) (*Event, error) {
	event.ID = f.nextID
	f.nextID++
	stored := *event
	f.events[event.ID] = &stored
	return event, nil
}

func (f *fakeRepo) List(context.Context) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeRepo) ListByCreator(_ context.Context, userID int) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if e.CreatedBy == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int) (*Event, error) {
	if e, ok := f.events[id]; ok {
		out := *e
		return &out, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRepo) Update(_ context.Context, event *Event) error {
	if _, ok := f.events[event.ID]; !ok {
		return common.ErrorNotFound
	}
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.events[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.events, id)
	return nil
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeRepo())

	created, err := s.Create(ctx, &Event{Title: "Launch", EventDate: "2026-12-01", CreatedBy: 3})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreate_BadDate(t *testing.T) {
	s := NewService(newFakeRepo())

	_, err := s.Create(context.Background(), &Event{Title: "Launch", EventDate: "tomorrow"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestUpdate_OnlyCreatorOrAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := NewService(repo)

	created, err := s.Create(ctx, &Event{Title: "Launch", EventDate: "2026-12-01", CreatedBy: 3})
	require.NoError(t, err)

	upd := &Event{ID: created.ID, Title: "Launch v2", EventDate: "2026-12-02"}

	_, err = s.Update(ctx, upd, 8, "organizer")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	got, err := s.Update(ctx, upd, 3, "organizer")
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", got.Title)

	upd.Title = "Launch v3"
	_, err = s.Update(ctx, upd, 99, "admin")
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeRepo())

	created, err := s.Create(ctx, &Event{Title: "Launch", EventDate: "2026-12-01", CreatedBy: 3})
	require.NoError(t, err)

	require.ErrorIs(t, s.Delete(ctx, created.ID, 8, "attendee"), common.ErrorForbidden)
	require.NoError(t, s.Delete(ctx, created.ID, 3, "organizer"))

	_, err = s.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListByCreator(t *testing.T) {
	ctx := context.Background()
	s := NewService(newFakeRepo())

	_, err := s.Create(ctx, &Event{Title: "A", EventDate: "2026-12-01", CreatedBy: 3})
	require.NoError(t, err)
	_, err = s.Create(ctx, &Event{Title: "B", EventDate: "2026-12-02", CreatedBy: 8})
	require.NoError(t, err)

	mine, err := s.ListByCreator(ctx, 3)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Title)
}
