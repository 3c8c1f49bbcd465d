package profile

import (
	"fmt"
	"strings"
	"time"
)

// Profile is the one-to-one account profile a user must create before any
// sport registration work. The onboarding core only ever checks that one
// exists; the fields beyond UserID belong to the profile-management flow.
type Profile struct {
	ID        string
	UserID    string
	Gender    string
	Birthday  time.Time
	Height    string
	Weight    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile id is required")
	}
	if strings.TrimSpace(p.UserID) == "" {
		return fmt.Errorf("profile user id is required")
	}

	return nil
}
