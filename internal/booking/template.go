package booking

import (
	"fmt"
	"strings"
)

const noDescription = "No description provided"

// ComposeDescription appends the meeting link and requester lines to the caller's description.
func ComposeDescription(description, meetingLink, clientEmail string) string {
	if clientEmail == "" {
		clientEmail = "N/A"
	}
	return fmt.Sprintf("%s\nGoogle Meet Link: %s\nClient Email: %s", description, meetingLink, clientEmail)
}

// ConfirmationSubject is the fixed subject of a confirmation email.
func ConfirmationSubject(eventName string) string {
	return "Event Confirmation: " + eventName
}

// ConfirmationBody renders the fixed plain-text body of a confirmation email.
func ConfirmationBody(n MailNotification, meetingLink string) string {
	description := n.Description
	if strings.TrimSpace(description) == "" {
		description = noDescription
	}

	var b strings.Builder
	b.WriteString("Dear Attendee,\n\n")
	fmt.Fprintf(&b, "Your event \"%s\" has been scheduled.\n", n.EventName)
	fmt.Fprintf(&b, "Date: %s\n", n.Date)
	fmt.Fprintf(&b, "Time: %s\n", n.TimeRange)
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Google Meet Link: %s\n\n", meetingLink)
	b.WriteString("Regards,\nEvent Creator\n")
	return b.String()
}
