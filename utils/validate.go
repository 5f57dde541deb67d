package utils

import "regexp"

// emailRe accepts anything shaped local@domain.tld without whitespace; real
// deliverability is SendGrid's problem, this only guards obvious garbage.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether v looks like an email address.
func IsEmail(v string) bool {
	return emailRe.MatchString(v)
}
