package domain

import "time"

// Comment is a message on a ticket. Internal comments are staff-only
// notes; the rest are customer-visible replies. Comments are immutable
// once written.
type Comment struct {
	ID         int64
	Body       string
	IsInternal bool
	TicketID   int64
	AuthorID   int64
	CreatedAt  time.Time
}
