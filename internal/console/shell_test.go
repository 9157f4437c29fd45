package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymontherock/internal/auth"
	"gymontherock/internal/billing"
	"gymontherock/internal/catalog"
	"gymontherock/internal/checkin"
	"gymontherock/internal/journal"
	"gymontherock/internal/membership"
	"gymontherock/internal/prompt"
	"gymontherock/internal/store"
)

type fixture struct {
	shell *Shell
	gate  auth.Service
	store *store.Store
	out   *bytes.Buffer
}

func newFixture(t *testing.T, input string) fixture {
	t.Helper()
	ctx := context.Background()
	st := store.New()
	require.NoError(t, st.ApplyCatalog(store.DefaultSeed()))
	j := journal.New()

	hasher, err := auth.NewHasher(auth.SchemePlain)
	require.NoError(t, err)
	gate := auth.NewService(st, j, auth.WithHasher(hasher))
	require.NoError(t, gate.Provision(ctx, "username", "username123"))

	var out bytes.Buffer
	io := prompt.New(strings.NewReader(input), &out)
	shell := New(io, gate, Handlers{
		Auth:       auth.NewHandler(gate, io),
		CheckIn:    checkin.NewHandler(checkin.NewService(st, j), io),
		Membership: membership.NewHandler(membership.NewService(st, j), io),
		Catalog:    catalog.NewHandler(catalog.NewService(st, j), io),
		Billing:    billing.NewHandler(billing.NewService(st), io),
	})
	return fixture{shell: shell, gate: gate, store: st, out: &out}
}

func TestFullFrontDeskSession(t *testing.T) {
	input := strings.Join([]string{
		"9",
		"1", "coach", "Coach1!",
		"2", "coach", "Coach1!",
		"2", "Ana", "Lima", "555-0101", "platinum", "Y",
		"1", "M0001", "S01", "S01", "F",
		"5",
		"6",
	}, "\n") + "\n"
	f := newFixture(t, input)

	require.NoError(t, f.shell.Run(context.Background()))

	text := f.out.String()
	assert.Contains(t, text, "Error 2003: Enter a valid option")
	assert.Contains(t, text, "[+]Great, let's start your fitness journey")
	assert.Contains(t, text, "[+]login attempt successful")
	assert.Contains(t, text, "Welcome, coach!")
	assert.Contains(t, text, "[+]You have successfully added member M0001")
	assert.Contains(t, text, "[+]Platinum: 1 members, Total fees: $10,000")
	assert.Contains(t, text, "[+]S01: 2 registrations, Total earnings: $2,200")
	assert.Contains(t, text, "Total monthly fee: $10,000.00")

	_, ok := f.gate.Identity()
	assert.False(t, ok, "exiting the menu logs out")
	assert.Equal(t, 1, f.store.MemberCount())
}

func TestMenuUnreachableWithoutLogin(t *testing.T) {
	f := newFixture(t, "2\nusername\nbad\nusername\nbad\nusername\nbad\n")

	err := f.shell.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
	assert.Contains(t, f.out.String(), "Too many failed attempts")
	assert.NotContains(t, f.out.String(), "GYM-ON-THE-ROCK")
}

func TestRunStopsOnCancel(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	f := newFixture(t, "")
	f.shell.io = prompt.New(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, f.shell.Run(ctx), context.Canceled)
}

func TestRunRecoversPanic(t *testing.T) {
	f := newFixture(t, "2\nusername\nusername123\n1\n")
	f.shell.items[0].action = func(context.Context) error { panic("boom") }

	err := f.shell.Run(context.Background())
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "boom")
}

func TestMenuRejectsBadChoice(t *testing.T) {
	f := newFixture(t, "2\nusername\nusername123\nzero\n0\n6\n")

	require.NoError(t, f.shell.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(f.out.String(), "Error 2003: Enter a valid option"))
}
