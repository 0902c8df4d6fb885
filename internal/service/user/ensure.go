package user

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Ensure makes sure a users row exists for id. It is idempotent and
// never overwrites an existing profile. An empty or oversized token name
// falls back to a generated one.
func (s *Service) Ensure(ctx context.Context, id uuid.UUID, name string) error {
	if id == uuid.Nil {
		return fmt.Errorf("user.Ensure: nil id")
	}

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		name = defaultName(id)
	}

	if err := s.users.Ensure(ctx, id, name, s.clock.Now().UTC()); err != nil {
		return fmt.Errorf("user.Ensure: %w", err)
	}
	return nil
}

func defaultName(id uuid.UUID) string {
	return "player-" + id.String()[:8]
}
