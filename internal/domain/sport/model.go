package sport

import (
	"fmt"
	"strings"
	"time"
)

// Sport is a configured sport users can register for.
type Sport struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

func (s Sport) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sport id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sport name is required")
	}
	if strings.TrimSpace(s.Slug) == "" {
		return fmt.Errorf("sport slug is required")
	}

	return nil
}

// Slugify derives the canonical slug from a sport name.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(lowered), "-")
}
