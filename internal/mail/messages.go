package mail

import (
	"fmt"
	"html"

	"github.com/ebnn/backend/internal/model"
)

// Identity carries the fixed addresses and branding used in outbound mail.
type Identity struct {
	ContactFrom string // sender of the operator notification
	AckFrom     string // sender of the visitor acknowledgement
	WelcomeFrom string // sender of the newsletter welcome
	AdminTo     string // operator inbox
	OwnerName   string
	SiteName    string
	SiteURL     string
	LogoURL     string
}

// Messages builds the three static messages the site sends.
type Messages struct {
	id Identity
}

// NewMessages creates a Messages for the given identity.
func NewMessages(id Identity) *Messages {
	return &Messages{id: id}
}

// AdminNotification is the message addressed to the operator.
func (m *Messages) AdminNotification(msg *model.ContactMessage) *model.Email {
	subject := "New Contact Form Submission from " + msg.Name
	if msg.Subject != "" {
		subject = "New Contact: " + msg.Subject
	}
	shownSubject := msg.Subject
	if shownSubject == "" {
		shownSubject = "N/A"
	}

	body := fmt.Sprintf(adminHTML,
		esc(m.id.SiteName),
		esc(msg.Name),
		esc(msg.Email), esc(msg.Email),
		esc(shownSubject),
		esc(msg.Message),
		esc(m.id.SiteName),
	)
	return &model.Email{
		From:    m.id.ContactFrom,
		To:      m.id.AdminTo,
		ReplyTo: msg.Email,
		Subject: subject,
		HTML:    body,
	}
}

// Acknowledgement is the copy sent back to the visitor.
func (m *Messages) Acknowledgement(msg *model.ContactMessage) *model.Email {
	body := fmt.Sprintf(ackHTML,
		esc(msg.Name),
		esc(m.id.OwnerName),
		esc(msg.Message),
		esc(m.id.OwnerName),
	)
	return &model.Email{
		From:    m.id.AckFrom,
		To:      msg.Email,
		Subject: "Message Received - " + m.id.OwnerName,
		HTML:    body,
	}
}

// Welcome is the newsletter welcome sent once per new subscriber.
func (m *Messages) Welcome(email string) *model.Email {
	body := fmt.Sprintf(welcomeHTML,
		esc(m.id.LogoURL), esc(m.id.OwnerName),
		esc(m.id.SiteURL),
		esc(m.id.OwnerName),
	)
	return &model.Email{
		From:    m.id.WelcomeFrom,
		To:      email,
		Subject: "Welcome to the " + m.id.OwnerName + " Newsletter!",
		HTML:    body,
	}
}

func esc(s string) string { return html.EscapeString(s) }

const adminHTML = `<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; padding: 20px; border-radius: 8px;">
    <h2 style="color: #00BFFF; border-bottom: 2px solid #00BFFF; padding-bottom: 10px;">New Message from %s</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Subject:</strong> %s</p>
    <h3 style="margin-top: 20px;">Message:</h3>
    <p style="white-space: pre-wrap; background-color: #f9f9f9; padding: 15px; border-left: 3px solid #00BFFF;">%s</p>
    <p style="margin-top: 30px; font-size: 0.9em; color: #777;">Sent via the %s contact form.</p>
  </div>
</div>`

const ackHTML = `<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; padding: 20px; border-radius: 8px;">
    <h2 style="color: #00BFFF; border-bottom: 2px solid #00BFFF; padding-bottom: 10px;">Thank You for Reaching Out!</h2>
    <p>Hi %s,</p>
    <p>Your message has been successfully received by %s.</p>
    <p>I aim to respond to all inquiries within 1-2 business days.</p>
    <h3 style="margin-top: 20px;">Your Message Summary:</h3>
    <p style="white-space: pre-wrap; background-color: #f9f9f9; padding: 15px; border-left: 3px solid #00BFFF;">%s</p>
    <p style="margin-top: 30px; color: #555;">Best regards,</p>
    <p style="color: #00BFFF; font-weight: bold;">%s</p>
  </div>
</div>`

const welcomeHTML = `<div style="font-family: 'Poppins', Arial, sans-serif; line-height: 1.6; color: #E0E0E0; background-color: #0A0A0A; padding: 20px; border: 1px solid #00BFFF;">
  <div style="max-width: 600px; margin: 0 auto; background: #1A1A1A; padding: 30px; border-radius: 12px;">
    <div style="text-align: center; margin-bottom: 20px;">
      <img src="%s" alt="%s" style="width: 80px; height: 80px; border-radius: 50%%; border: 3px solid #00BFFF;">
    </div>
    <h2 style="color: #00BFFF; text-align: center; margin-bottom: 15px;">You're In!</h2>
    <p>Hi there,</p>
    <p>Thank you for subscribing to my newsletter! I'm excited to share my latest projects, insights on creative direction, and technological explorations with you.</p>
    <p style="margin-top: 20px; text-align: center;">
      <a href="%s" style="display: inline-block; padding: 10px 20px; background-color: #00BFFF; color: #0A0A0A; text-decoration: none; border-radius: 8px; font-weight: bold;">Visit My Portfolio</a>
    </p>
    <p style="margin-top: 30px; font-size: 0.9em; color: #888; text-align: center;">Best regards,<br>%s</p>
  </div>
</div>`
