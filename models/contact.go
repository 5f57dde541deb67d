package models

// ContactForm is the payload of the public contact-mail endpoint. Nothing on
// this path is persisted; the form is validated, the captcha token verified,
// and two emails dispatched.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
