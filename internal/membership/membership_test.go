package membership

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymontherock/internal/journal"
	"gymontherock/internal/prompt"
	"gymontherock/internal/store"
)

func newTestService() (*service, *store.Store, *journal.Journal) {
	st := store.New()
	j := journal.New()
	svc := NewService(st, j).(*service)
	svc.now = func() time.Time { return time.Date(2024, 5, 17, 18, 30, 0, 0, time.UTC) }
	return svc, st, j
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	svc, st, j := newTestService()

	m, err := svc.Enroll(ctx, EnrollInput{FirstName: " Ana ", LastName: "Lima", Contact: "555-0101", MembershipType: "platinum"})
	require.NoError(t, err)
	assert.Equal(t, "M0001", m.ID)
	assert.Equal(t, "Ana", m.FirstName)
	assert.Equal(t, store.PlanPlatinum, m.MembershipType)
	assert.Equal(t, "2024-05-17", m.EnrolledOn)

	m2, err := svc.Enroll(ctx, EnrollInput{FirstName: "Bo", MembershipType: "GOLD"})
	require.NoError(t, err)
	assert.Equal(t, "M0002", m2.ID)
	assert.Equal(t, store.PlanGold, m2.MembershipType)

	assert.Equal(t, 2, st.MemberCount())
	assert.Equal(t, 1, j.CurrentVersion(ctx, "member", "M0002"))
}

func TestEnrollValidation(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService()

	_, err := svc.Enroll(ctx, EnrollInput{FirstName: "Ana1", MembershipType: "Gold"})
	require.ErrorIs(t, err, ErrInvalidName)
	_, err = svc.Enroll(ctx, EnrollInput{FirstName: "", MembershipType: "Gold"})
	require.ErrorIs(t, err, ErrInvalidName)
	_, err = svc.Enroll(ctx, EnrollInput{FirstName: "Ana", MembershipType: "Bronze"})
	require.ErrorIs(t, err, ErrInvalidMembershipType)

	assert.Zero(t, st.MemberCount())
}

func TestNormalizeMembershipType(t *testing.T) {
	svc, _, _ := newTestService()
	for raw, want := range map[string]string{
		"platinum":  store.PlanPlatinum,
		" DIAMOND ": store.PlanDiamond,
		"gOLD":      store.PlanGold,
		"standard":  store.PlanStandard,
	} {
		got, err := svc.NormalizeMembershipType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}
}

func TestAddInstructor(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService()

	i, err := svc.AddInstructor(ctx, "Jaxon Steele")
	require.NoError(t, err)
	assert.Equal(t, "I001", i.ID)
	assert.Equal(t, "Jaxon Steele", i.FullName())

	i, err = svc.AddInstructor(ctx, "Jaxon Steele")
	require.NoError(t, err)
	assert.Equal(t, "I002", i.ID)

	_, err = svc.AddInstructor(ctx, "Cher")
	require.ErrorIs(t, err, ErrInvalidName)
	assert.Len(t, st.Instructors(), 2)
}

func TestHandleAddMember(t *testing.T) {
	svc, st, _ := newTestService()
	var out bytes.Buffer
	input := "Ana1\nAna\nLima\n555-0101\nbronze\ndiamond\ny\n"

	err := NewHandler(svc, prompt.New(strings.NewReader(input), &out)).HandleAddMember(context.Background())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Error 1008")
	assert.Contains(t, text, "Error 1009")
	assert.Contains(t, text, "[+]Membership Type: Diamond")
	assert.Contains(t, text, "[+]You have successfully added member M0001")

	m, ok := st.Member("M0001")
	require.True(t, ok)
	assert.Equal(t, store.PlanDiamond, m.MembershipType)
}

func TestHandleAddMemberCancelled(t *testing.T) {
	svc, st, _ := newTestService()
	var out bytes.Buffer
	input := "Ana\nLima\n555\ngold\nn\n"

	err := NewHandler(svc, prompt.New(strings.NewReader(input), &out)).HandleAddMember(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[+]Addition cancelled")
	assert.Zero(t, st.MemberCount())
}

func TestHandleAddInstructor(t *testing.T) {
	svc, st, _ := newTestService()
	var out bytes.Buffer

	err := NewHandler(svc, prompt.New(strings.NewReader("x\n9\n3\n"), &out)).HandleAddInstructor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out.String(), "[+]Invalid choice."))
	assert.Contains(t, out.String(), "[+]Instructor I001 added: Ryder Knox")
	require.Len(t, st.Instructors(), 1)
}
