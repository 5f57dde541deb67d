package mail

import (
	"fmt"
	"html"

	"kdexpertise/models"
)

// Email bodies are written in French, the language of the clientele.

// ComposeClientConfirmation builds the confirmation sent to the client after
// an appointment request is recorded.
func ComposeClientConfirmation(appt models.Appointment) Message {
	msg := ""
	if appt.Message != "" {
		msg = fmt.Sprintf("<p>Message : %s</p>", html.EscapeString(appt.Message))
	}
	body := fmt.Sprintf(`
      <p>Bonjour %s,</p>
      <p>Votre demande pour <b>%s</b> le <b>%s</b> à <b>%s</b> a bien été reçue.</p>
      <p>Adresse : %s<br/>Téléphone : %s</p>
      %s
      <p>Nous vous contacterons pour confirmer.</p>
      <p>Bien cordialement,<br/>KD Expertise</p>`,
		html.EscapeString(appt.FullName),
		html.EscapeString(appt.Service),
		appt.Date, appt.Time,
		html.EscapeString(appt.Address),
		html.EscapeString(appt.Phone),
		msg,
	)

	return Message{
		To:      appt.Email,
		ToName:  appt.FullName,
		Subject: fmt.Sprintf("Votre demande — %s %s", appt.Date, appt.Time),
		HTML:    body,
	}
}

// ComposeAdminAlert builds the internal alert for a new appointment request.
func ComposeAdminAlert(appt models.Appointment, adminEmail string) Message {
	msg := ""
	if appt.Message != "" {
		msg = fmt.Sprintf("<li>Message : %s</li>", html.EscapeString(appt.Message))
	}
	body := fmt.Sprintf(`
      <p>Nouvelle demande :</p>
      <ul>
        <li>Service : %s</li>
        <li>Date/Heure : %s %s</li>
        <li>Nom : %s</li>
        <li>Email : %s</li>
        <li>Téléphone : %s</li>
        <li>Adresse : %s</li>
        %s
        <li>Référence : %s</li>
      </ul>`,
		html.EscapeString(appt.Service),
		appt.Date, appt.Time,
		html.EscapeString(appt.FullName),
		html.EscapeString(appt.Email),
		html.EscapeString(appt.Phone),
		html.EscapeString(appt.Address),
		msg,
		appt.ID,
	)

	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("Nouvelle demande — %s", appt.FullName),
		HTML:    body,
	}
}

// ComposeReminder builds the reminder sent the day before an appointment.
func ComposeReminder(appt models.Appointment) Message {
	body := fmt.Sprintf(`
      <p>Bonjour %s,</p>
      <p>Petit rappel : votre rendez-vous pour <b>%s</b> a lieu demain, le <b>%s</b> à <b>%s</b>.</p>
      <p>Adresse : %s</p>
      <p>À demain,<br/>KD Expertise</p>`,
		html.EscapeString(appt.FullName),
		html.EscapeString(appt.Service),
		appt.Date, appt.Time,
		html.EscapeString(appt.Address),
	)

	return Message{
		To:      appt.Email,
		ToName:  appt.FullName,
		Subject: fmt.Sprintf("Rappel — rendez-vous du %s à %s", appt.Date, appt.Time),
		HTML:    body,
	}
}

// ComposeContactConfirmation acknowledges a contact-form message.
func ComposeContactConfirmation(form models.ContactForm) Message {
	body := fmt.Sprintf(`
      <p>Bonjour %s,</p>
      <p>Nous avons bien reçu votre message et reviendrons vers vous rapidement.</p>
      <p>Bien cordialement,<br/>KD Expertise</p>`,
		html.EscapeString(form.Name),
	)

	return Message{
		To:      form.Email,
		ToName:  form.Name,
		Subject: "Votre message a bien été reçu",
		HTML:    body,
	}
}

// ComposeContactAdminAlert forwards a contact-form message to the admin inbox.
func ComposeContactAdminAlert(form models.ContactForm, adminEmail string) Message {
	phone := ""
	if form.Phone != "" {
		phone = fmt.Sprintf("<li>Téléphone : %s</li>", html.EscapeString(form.Phone))
	}
	body := fmt.Sprintf(`
      <p>Nouveau message via le formulaire de contact :</p>
      <ul>
        <li>Nom : %s</li>
        <li>Email : %s</li>
        %s
      </ul>
      <p>%s</p>`,
		html.EscapeString(form.Name),
		html.EscapeString(form.Email),
		phone,
		html.EscapeString(form.Message),
	)

	return Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("Nouveau message — %s", form.Name),
		HTML:    body,
	}
}
