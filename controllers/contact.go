package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"strings"

	"shinmen-coffee/models"
)

// ContactMailer forwards contact form submissions
type ContactMailer interface {
	ForwardContactMessage(msg models.ContactMessage) error
}

// ContactController handles the contact form
type ContactController struct {
	Mailer ContactMailer
}

// NewContactController creates a ContactController. mailer may be nil, in which case
// submissions are only logged.
func NewContactController(mailer ContactMailer) *ContactController {
	return &ContactController{Mailer: mailer}
}

// Submit accepts a contact form submission
func (cc *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		http.Error(w, "Name, email and message are required", http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		http.Error(w, "Invalid email address", http.StatusBadRequest)
		return
	}

	log.Printf("Contact form submitted: name=%q email=%q subject=%q", msg.Name, msg.Email, msg.Subject)

	if cc.Mailer != nil {
		if err := cc.Mailer.ForwardContactMessage(msg); err != nil {
			log.Printf("Failed to forward contact message from %s: %v", msg.Email, err)
			http.Error(w, "Could not send your message, please try again later", http.StatusBadGateway)
			return
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"message": "Thanks for reaching out! We'll get back to you soon."})
}
