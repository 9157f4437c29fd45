// internal/store/seed.go
package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedUser is an operator account loaded at startup. Password is in plain
// form; the auth service hashes it on provisioning.
type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SeedData is the optional startup fixture.
type SeedData struct {
	Users    []SeedUser `yaml:"users"`
	Sessions []Session  `yaml:"sessions"`
	Members  []Member   `yaml:"members"`
}

// DefaultSeed mirrors the sample data the front desk ships with.
func DefaultSeed() SeedData {
	return SeedData{
		Users: []SeedUser{{Username: "username", Password: "username123"}},
		Sessions: []Session{
			{ID: "S01", Name: "MA Classes", Cost: 1100, Schedule: ScheduleEvening},
			{ID: "S02", Name: "Spin Classes", Cost: 900, Schedule: ScheduleMorning},
		},
	}
}

// LoadSeedFile reads a YAML fixture. An empty path yields DefaultSeed.
func LoadSeedFile(path string) (SeedData, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedData{}, fmt.Errorf("parse seed file: %w", err)
	}
	return seed, nil
}

// ApplyCatalog loads the seed sessions and members. Users are provisioned by
// the auth service so their passwords go through the configured hasher.
func (s *Store) ApplyCatalog(seed SeedData) error {
	for _, sess := range seed.Sessions {
		if sess.ID == "" {
			sess.ID = NextSessionID(s.SessionIDs())
		}
		if sess.Cost < 0 {
			return fmt.Errorf("seed session %s: negative cost %d", sess.ID, sess.Cost)
		}
		s.PutSession(sess)
	}
	for _, m := range seed.Members {
		if m.ID == "" {
			m.ID = s.NextMemberID()
		}
		if err := s.AddMember(m); err != nil {
			return fmt.Errorf("seed member: %w", err)
		}
	}
	return nil
}
