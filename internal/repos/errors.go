package repos

import (
	"errors"
	"strings"
)

// ErrConstraint marks a write the schema rejected (unique index, CHECK,
// missing FK target). Callers surface it as a validation error.
var ErrConstraint = errors.New("constraint violation")

// AsConstraint maps sqlite constraint failures onto ErrConstraint so the
// admin layer can tell "bad input" from "store broken". The driver only
// exposes the condition through the message text.
func AsConstraint(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "NOT NULL constraint failed") {
		return errors.Join(ErrConstraint, err)
	}
	return err
}
