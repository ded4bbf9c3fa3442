package sendgrid

import "encoding/json"

// Contact is a marketing contact record. Email is the natural key; SendGrid
// upserts by email and assigns the id.
type Contact struct {
	ID           string         `json:"id,omitempty"`
	Email        string         `json:"email"`
	FirstName    string         `json:"first_name,omitempty"`
	LastName     string         `json:"last_name,omitempty"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	ListIDs      []string       `json:"list_ids,omitempty"`
}

// List is a marketing contact list.
type List struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactCount int    `json:"contact_count"`
}

// Template is a transactional email template. Versions are ordered as the
// provider returns them; at most one carries Active == 1.
type Template struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Generation string            `json:"generation"`
	UpdatedAt  string            `json:"updated_at"`
	Versions   []TemplateVersion `json:"versions"`
}

// TemplateVersion is one revision of a template. TemplateID is a non-owning
// back-reference.
type TemplateVersion struct {
	ID           string `json:"id"`
	TemplateID   string `json:"template_id"`
	Active       int    `json:"active"`
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	HTMLContent  string `json:"html_content,omitempty"`
	PlainContent string `json:"plain_content,omitempty"`
	Editor       string `json:"editor,omitempty"`
	TestData     string `json:"test_data,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// TemplatePage is one page of a template listing. NextPageToken is empty on
// the last page; callers pass it back to continue.
type TemplatePage struct {
	Templates     []Template
	NextPageToken string
}

// Campaign is a marketing campaign. Status transitions are provider-owned.
type Campaign struct {
	ID         json.Number `json:"id"`
	Title      string      `json:"title"`
	Status     string      `json:"status,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	SendAt     string      `json:"send_at,omitempty"`
}

// SingleSend is a one-off scheduled bulk email.
type SingleSend struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
	SendAt string `json:"send_at,omitempty"`
	SendTo struct {
		ListIDs []string `json:"list_ids,omitempty"`
	} `json:"send_to,omitempty"`
}

// StatsSample is one aggregation bucket of email statistics. Metrics keys
// vary by aggregation so they stay a map of counters.
type StatsSample struct {
	Metrics map[string]int64 `json:"metrics"`
	Name    string           `json:"name,omitempty"`
	Type    string           `json:"type,omitempty"`
}

// StatsPeriod is the statistics for one date.
type StatsPeriod struct {
	Date  string        `json:"date"`
	Stats []StatsSample `json:"stats"`
}
