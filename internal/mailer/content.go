package mailer

import (
	"fmt"
	"html"
	"strings"

	"github.com/studioforma/contact-api/internal/api/dto/v1/contact"
)

// RenderSubmission renders a submission into an HTML body and a plain-text
// body carrying the same content. Optional fields are omitted entirely when
// unset; line breaks in the message are preserved in both renderings.
func RenderSubmission(sub *contact.SubmitRequest) (htmlBody, textBody string) {
	var h strings.Builder
	h.WriteString("<h2>New Contact Form Submission</h2>\n")
	fmt.Fprintf(&h, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(sub.Name))
	fmt.Fprintf(&h, "<p><strong>Email:</strong> <a href=\"mailto:%s\">%s</a></p>\n",
		html.EscapeString(sub.Email), html.EscapeString(sub.Email))
	fmt.Fprintf(&h, "<p><strong>Subject:</strong> %s</p>\n", html.EscapeString(sub.Subject))
	if sub.ProjectType != "" {
		fmt.Fprintf(&h, "<p><strong>Project Type:</strong> %s</p>\n", html.EscapeString(sub.ProjectType))
	}
	if sub.Budget != "" {
		fmt.Fprintf(&h, "<p><strong>Budget:</strong> %s</p>\n", html.EscapeString(sub.Budget))
	}
	h.WriteString("<h3>Message</h3>\n")
	message := strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>\n")
	fmt.Fprintf(&h, "<p>%s</p>\n", message)

	var t strings.Builder
	t.WriteString("New Contact Form Submission\n\n")
	fmt.Fprintf(&t, "Name: %s\n", sub.Name)
	fmt.Fprintf(&t, "Email: %s\n", sub.Email)
	fmt.Fprintf(&t, "Subject: %s\n", sub.Subject)
	if sub.ProjectType != "" {
		fmt.Fprintf(&t, "Project Type: %s\n", sub.ProjectType)
	}
	if sub.Budget != "" {
		fmt.Fprintf(&t, "Budget: %s\n", sub.Budget)
	}
	fmt.Fprintf(&t, "\nMessage:\n%s\n", sub.Message)

	return h.String(), t.String()
}
