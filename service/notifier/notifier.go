// Package notifier is the transient notification side-channel. Events are
// observational only: delivery is best effort and a failed publish never
// fails the flow that produced it.
package notifier

import (
	"time"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Event struct {
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service interface {
	Notify(c ctx.Ctx, severity Severity, message string)
}
