// internal/store/store.go
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a keyed record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when inserting a key that already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrUnknownPlan is returned when a member references a plan outside the catalog.
	ErrUnknownPlan = errors.New("unknown membership plan")
)

// Store holds every entity collection in memory. Listings come back in
// insertion order so reports are reproducible.
type Store struct {
	mu sync.RWMutex

	users     map[string]User
	userOrder []string

	members     map[string]Member
	memberOrder []string

	sessions     map[string]Session
	sessionOrder []string

	checkIns     []*CheckIn
	checkInIndex map[uuid.UUID]*CheckIn

	instructors []Instructor

	plans     map[string]MembershipPlan
	planOrder []string
}

// New creates an empty store carrying the default plan catalog.
func New() *Store {
	s := &Store{
		users:        make(map[string]User),
		members:      make(map[string]Member),
		sessions:     make(map[string]Session),
		checkInIndex: make(map[uuid.UUID]*CheckIn),
		plans:        make(map[string]MembershipPlan),
	}
	for _, p := range DefaultPlans() {
		s.plans[p.Name] = p
		s.planOrder = append(s.planOrder, p.Name)
	}
	return s
}

// AddUser inserts a new user.
func (s *Store) AddUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Username]; ok {
		return fmt.Errorf("user %q: %w", u.Username, ErrDuplicate)
	}
	s.users[u.Username] = u
	s.userOrder = append(s.userOrder, u.Username)
	return nil
}

// User looks up a user by username.
func (s *Store) User(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	return u, ok
}

// HasUser reports whether the username is taken.
func (s *Store) HasUser(username string) bool {
	_, ok := s.User(username)
	return ok
}

// NextMemberID derives the next member identifier from the member count.
func (s *Store) NextMemberID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FormatMemberID(len(s.members) + 1)
}

// AddMember inserts a member. The membership type must name a known plan.
func (s *Store) AddMember(m Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plans[m.MembershipType]; !ok {
		return fmt.Errorf("member %s plan %q: %w", m.ID, m.MembershipType, ErrUnknownPlan)
	}
	if _, ok := s.members[m.ID]; ok {
		return fmt.Errorf("member %s: %w", m.ID, ErrDuplicate)
	}
	s.members[m.ID] = m
	s.memberOrder = append(s.memberOrder, m.ID)
	return nil
}

// Member looks up a member by id.
func (s *Store) Member(id string) (Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	return m, ok
}

// Members lists members in enrollment order.
func (s *Store) Members() []Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.membersLocked()
}

func (s *Store) membersLocked() []Member {
	out := make([]Member, 0, len(s.memberOrder))
	for _, id := range s.memberOrder {
		out = append(out, s.members[id])
	}
	return out
}

// MemberCount returns the number of enrolled members.
func (s *Store) MemberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// PutSession inserts a session or replaces an existing one in place.
func (s *Store) PutSession(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.ID]; !ok {
		s.sessionOrder = append(s.sessionOrder, sess.ID)
	}
	s.sessions[sess.ID] = sess
}

// Session looks up a session by id.
func (s *Store) Session(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Sessions lists sessions in creation order.
func (s *Store) Sessions() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionsLocked()
}

func (s *Store) sessionsLocked() []Session {
	out := make([]Session, 0, len(s.sessionOrder))
	for _, id := range s.sessionOrder {
		out = append(out, s.sessions[id])
	}
	return out
}

// SessionIDs returns the session ids in creation order.
func (s *Store) SessionIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.sessionOrder...)
}

// AppendCheckIn adds a check-in to the end of the log. The member must exist.
func (s *Store) AppendCheckIn(c CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[c.MemberID]; !ok {
		return fmt.Errorf("member %s: %w", c.MemberID, ErrNotFound)
	}
	if _, ok := s.checkInIndex[c.ID]; ok {
		return fmt.Errorf("check-in %s: %w", c.ID, ErrDuplicate)
	}
	stored := c.clone()
	s.checkIns = append(s.checkIns, &stored)
	s.checkInIndex[c.ID] = &stored
	return nil
}

// AppendRegistration adds a session to an existing check-in. Duplicates are kept.
func (s *Store) AppendRegistration(checkInID uuid.UUID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.checkInIndex[checkInID]
	if !ok {
		return fmt.Errorf("check-in %s: %w", checkInID, ErrNotFound)
	}
	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	c.Sessions = append(c.Sessions, sessionID)
	return nil
}

// CheckIn returns a copy of one check-in.
func (s *Store) CheckIn(id uuid.UUID) (CheckIn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.checkInIndex[id]
	if !ok {
		return CheckIn{}, false
	}
	return c.clone(), true
}

// CheckIns returns copies of every check-in in chronological order.
func (s *Store) CheckIns() []CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkInsLocked()
}

func (s *Store) checkInsLocked() []CheckIn {
	out := make([]CheckIn, 0, len(s.checkIns))
	for _, c := range s.checkIns {
		out = append(out, c.clone())
	}
	return out
}

// NextInstructorID derives the next instructor identifier from the roster size.
func (s *Store) NextInstructorID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FormatInstructorID(len(s.instructors) + 1)
}

// AddInstructor appends an instructor to the roster.
func (s *Store) AddInstructor(i Instructor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instructors = append(s.instructors, i)
}

// Instructors lists the roster in insertion order.
func (s *Store) Instructors() []Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Instructor(nil), s.instructors...)
}

// Plan looks up a membership plan by name.
func (s *Store) Plan(name string) (MembershipPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plans[name]
	return p, ok
}

// Plans lists the plan catalog in reporting order.
func (s *Store) Plans() []MembershipPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plansLocked()
}

func (s *Store) plansLocked() []MembershipPlan {
	out := make([]MembershipPlan, 0, len(s.planOrder))
	for _, name := range s.planOrder {
		out = append(out, s.plans[name])
	}
	return out
}

// Snapshot copies the state billing needs under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Members:  s.membersLocked(),
		Sessions: s.sessionsLocked(),
		CheckIns: s.checkInsLocked(),
		Plans:    s.plansLocked(),
	}
}
