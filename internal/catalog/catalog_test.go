package catalog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymontherock/internal/journal"
	"gymontherock/internal/prompt"
	"gymontherock/internal/store"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	require.NoError(t, st.ApplyCatalog(store.DefaultSeed()))
	return st
}

func TestAddAssignsNextID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.New(), journal.New())

	s, err := svc.Add(ctx, "Yoga", 700, "morning")
	require.NoError(t, err)
	assert.Equal(t, "S01", s.ID)
	assert.Equal(t, store.ScheduleMorning, s.Schedule)

	s, err = svc.Add(ctx, " Boxing ", 1200, "BOTH")
	require.NoError(t, err)
	assert.Equal(t, "S02", s.ID)
	assert.Equal(t, "Boxing", s.Name)
	assert.Equal(t, store.ScheduleBoth, s.Schedule)

	_, err = svc.Add(ctx, "Free", -1, "Morning")
	require.ErrorIs(t, err, ErrInvalidCost)
	_, err = svc.Add(ctx, "Late", 100, "midnight")
	require.ErrorIs(t, err, ErrInvalidSchedule)

	assert.Len(t, svc.List(ctx), 2)
}

func TestAddUsesHighestSuffix(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	st.PutSession(store.Session{ID: "S07", Name: "Old", Cost: 10, Schedule: store.ScheduleBoth})
	st.PutSession(store.Session{ID: "S02", Name: "Older", Cost: 10, Schedule: store.ScheduleBoth})

	s, err := NewService(st, journal.New()).Add(ctx, "New", 10, "Evening")
	require.NoError(t, err)
	assert.Equal(t, "S08", s.ID)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)
	j := journal.New()
	svc := NewService(st, j)

	s, err := svc.Update(ctx, " s01 ", 1500, "both")
	require.NoError(t, err)
	assert.Equal(t, 1500, s.Cost)

	stored, ok := st.Session("S01")
	require.True(t, ok)
	assert.Equal(t, "MA Classes", stored.Name)
	assert.Equal(t, store.ScheduleBoth, stored.Schedule)
	assert.Equal(t, []string{"S01", "S02"}, st.SessionIDs(), "update keeps position")

	_, err = svc.Update(ctx, "S99", 1, "Morning")
	require.ErrorIs(t, err, ErrUnknownSession)

	assert.Equal(t, 1, j.CurrentVersion(ctx, "session", "S01"))
	events := j.Stream(ctx, 0, 0)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, "S01", last.AggregateID)
	assert.Equal(t, "SessionUpdated", last.EventType)
}

func TestHandleManageSessionsAdd(t *testing.T) {
	st := seededStore(t)
	var out bytes.Buffer
	input := "1\nKettlebells\nabc\n-5\n800\nnoon\nevening\n"

	err := NewHandler(NewService(st, journal.New()), prompt.New(strings.NewReader(input), &out)).
		HandleManageSessions(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[+][S01] MA Classes ($1,100)")
	assert.Equal(t, 2, strings.Count(text, "[+]Cost must be a whole, non-negative number"))
	assert.Contains(t, text, "[+]You have successfully added session S03")

	s, ok := st.Session("S03")
	require.True(t, ok)
	assert.Equal(t, 800, s.Cost)
	assert.Equal(t, store.ScheduleEvening, s.Schedule)
}

func TestHandleManageSessionsUpdate(t *testing.T) {
	st := seededStore(t)
	var out bytes.Buffer

	h := NewHandler(NewService(st, journal.New()), prompt.New(strings.NewReader("2\nS09\n2\ns02\n950\nmorning\n"), &out))
	require.NoError(t, h.HandleManageSessions(context.Background()))
	assert.Contains(t, out.String(), "Error 1010: Invalid session ID")

	require.NoError(t, h.HandleManageSessions(context.Background()))
	assert.Contains(t, out.String(), "[+]Your current info: Spin Classes - $900 (Morning)")
	assert.Contains(t, out.String(), "[+]Your session has been updated ")

	s, _ := st.Session("S02")
	assert.Equal(t, 950, s.Cost)
}
