package booking

import (
	"strings"

	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

// Values offered by the back-office. The server stores any non-empty status;
// the list is not enforced.
const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func KnownStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

// ===============================
// Validations
// ===============================

// InitialStatus is the status every public submission starts in.
func InitialStatus() Status {
	return StatusPending
}

// ParseStatus only rejects an empty value.
func ParseStatus(raw string) (Status, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", httperr.ErrBusiness("status_required")
	}
	return Status(s), nil
}

func (s Status) Known() bool {
	for _, k := range KnownStatuses() {
		if s == k {
			return true
		}
	}
	return false
}
