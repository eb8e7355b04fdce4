package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DerekRojGar/awa-AquaReminder/models"
)

// ProfileService persists the single user profile as a whole JSON document.
// There is no partial update: Save overwrites, Load returns a snapshot.
type ProfileService struct {
	dir string
}

func NewProfileService(dir string) *ProfileService {
	return &ProfileService{dir: dir}
}

func (s *ProfileService) path() string {
	return filepath.Join(s.dir, "profile.json")
}

// Load returns the saved profile, or nil when none has been saved yet. A
// corrupt or unreadable file also reads as absent: availability over surfacing
// an error the user cannot act on.
func (s *ProfileService) Load() *models.Profile {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil
	}
	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

// Save overwrites the profile document. Write failures are reported: a silent
// failed save would tell the user their data persisted when it did not.
func (s *ProfileService) Save(p *models.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}

// IsComplete reports whether a saved profile carries weight, height and goal.
func (s *ProfileService) IsComplete() bool {
	return s.Load().IsComplete()
}

// Delete removes the profile document. Idempotent: deleting an absent profile
// succeeds.
func (s *ProfileService) Delete() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ResetAll wipes the profile and the entire intake ledger. The two deletions
// run in sequence; a failure names which one stopped the wipe so a partial
// reset is never reported as a full one.
func (s *ProfileService) ResetAll(intake *IntakeService) error {
	if err := s.Delete(); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := intake.Reset(); err != nil {
		return fmt.Errorf("clear intake ledger: %w", err)
	}
	return nil
}
