// Package clock abstracts wall-clock time so date-sensitive logic
// (the weekend tariff) stays testable.
package clock

import (
	"context"
	"time"
)

type Clock interface {
	Now(ctx context.Context) time.Time
}
