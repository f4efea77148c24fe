package handicap

import (
	"math"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

const (
	MethodUSGA   = "USGA"
	MethodManual = "Manual"
)

var ErrInvalidHistory = crerr.New("invalid handicap history entry")

// History is one immutable entry of a user's handicap audit trail. Corrections are
// recorded as new entries; existing entries are never edited or removed.
type History struct {
	ID                string
	UserID            string
	HandicapIndex     float64
	EffectiveDate     time.Time
	CalculationMethod string
	RoundsUsed        int
	Notes             string
	CreatedAt         time.Time
}

func (h History) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return crerr.Wrap(ErrInvalidHistory, "id is required")
	}
	if strings.TrimSpace(h.UserID) == "" {
		return crerr.Wrap(ErrInvalidHistory, "user id is required")
	}
	if math.IsNaN(h.HandicapIndex) || h.HandicapIndex < MinIndex || h.HandicapIndex > MaxIndex {
		return crerr.Wrapf(ErrInvalidHistory, "index %v outside [%v, %v]", h.HandicapIndex, MinIndex, MaxIndex)
	}
	if strings.TrimSpace(h.CalculationMethod) == "" {
		return crerr.Wrap(ErrInvalidHistory, "calculation method is required")
	}
	if h.RoundsUsed < 0 {
		return crerr.Wrap(ErrInvalidHistory, "rounds used cannot be negative")
	}
	if h.EffectiveDate.IsZero() {
		return crerr.Wrap(ErrInvalidHistory, "effective date is required")
	}
	return nil
}
