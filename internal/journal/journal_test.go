package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Message string `json:"message"`
}

func TestAppendAssignsVersionsAndSequence(t *testing.T) {
	ctx := context.Background()
	j := New()

	require.NoError(t, j.Record(ctx, "M0001", "member", "MemberEnrolled", testEvent{Message: "hi"}))
	require.NoError(t, j.Record(ctx, "S01", "session", "SessionAdded", testEvent{Message: "spin"}))
	require.NoError(t, j.Record(ctx, "M0001", "member", "MemberCheckedIn", testEvent{Message: "again"}))

	assert.Equal(t, 2, j.CurrentVersion(ctx, "member", "M0001"))
	assert.Equal(t, 1, j.CurrentVersion(ctx, "session", "S01"))
	assert.Equal(t, 3, j.Len())

	events := j.Stream(ctx, 0, 0)
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Version)
	assert.Equal(t, int64(1), events[0].Sequence)
	assert.Equal(t, "session", events[1].AggregateType)
	assert.Equal(t, 2, events[2].Version)
	assert.Equal(t, int64(3), events[2].Sequence)

	var payload testEvent
	require.NoError(t, json.Unmarshal(events[2].EventData, &payload))
	assert.Equal(t, "again", payload.Message)
}

func TestAppendDetectsConflict(t *testing.T) {
	ctx := context.Background()
	j := New()

	require.NoError(t, j.Append(ctx, "agg", "test", 0, []Event{{EventType: "A"}, {EventType: "B"}}))
	err := j.Append(ctx, "agg", "test", 1, []Event{{EventType: "C"}})
	require.ErrorIs(t, err, ErrConcurrencyConflict)

	require.ErrorIs(t, j.Append(ctx, "agg", "test", -1, nil), ErrInvalidVersion)
	assert.Equal(t, 2, j.CurrentVersion(ctx, "test", "agg"))
}

func TestAggregatesAreKeyedByType(t *testing.T) {
	ctx := context.Background()
	j := New()
	require.NoError(t, j.Record(ctx, "M0001", "user", "UserRegistered", testEvent{}))
	require.NoError(t, j.Record(ctx, "M0001", "member", "MemberEnrolled", testEvent{}))

	assert.Equal(t, 1, j.CurrentVersion(ctx, "user", "M0001"))
	assert.Equal(t, 1, j.CurrentVersion(ctx, "member", "M0001"))

	events := j.Stream(ctx, 1, 0)
	require.Len(t, events, 1)
	assert.Equal(t, "member", events[0].AggregateType)
	assert.Equal(t, "MemberEnrolled", events[0].EventType)
}

func TestStreamPaginates(t *testing.T) {
	ctx := context.Background()
	j := New()
	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(ctx, fmt.Sprintf("agg-%d", i), "test", "Tick", testEvent{}))
	}

	first := j.Stream(ctx, 0, 2)
	require.Len(t, first, 2)
	next := j.Stream(ctx, first[1].Sequence, 10)
	require.Len(t, next, 3)
	assert.Equal(t, int64(3), next[0].Sequence)
	assert.Empty(t, j.Stream(ctx, 5, 10))
	assert.Len(t, j.Stream(ctx, 0, 0), 5)
}

func TestRecordRejectsUnmarshalableData(t *testing.T) {
	err := New().Record(context.Background(), "agg", "test", "Bad", make(chan int))
	require.ErrorContains(t, err, "marshal Bad")
}
