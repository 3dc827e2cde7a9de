// Package mail sends delivery confirmation emails. Sending is best
// effort: delivery requests succeed whether or not the mail goes out.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Confirmation carries everything the confirmation template needs.
type Confirmation struct {
	Email        string
	Name         string
	LastName     string
	PackageCount int
	Distance     float64
	Price        float64
	Date         time.Time
}

type Sender interface {
	// SendConfirmation delivers the confirmation mail, or reports why it
	// could not.
	SendConfirmation(ctx context.Context, c Confirmation) error
	// Enabled reports whether a mail provider is configured at all.
	Enabled() bool
}

func confirmationHTML(c Confirmation) string {
	parts := []string{
		"<div>",
		fmt.Sprintf("Dear %s %s,<br/>", c.Name, c.LastName),
		"here are your delivery details:<br/>",
		fmt.Sprintf("number of packages: %d<br/>", c.PackageCount),
		fmt.Sprintf("distance: %g km<br/>", c.Distance),
		fmt.Sprintf("cost: %.2f EUR<br/>", c.Price),
		fmt.Sprintf("delivery date: %s<br/>", c.Date.Format("2.1.2006")),
		"<br/>",
		"Pleasure doing business with you!",
		"</div>",
	}
	return strings.Join(parts, "")
}
