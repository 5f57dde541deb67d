package mail

import "context"

// Message is one outbound transactional email.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Mailer sends transactional email. Implementations can be swapped without
// changing callers; the production one talks to SendGrid.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
