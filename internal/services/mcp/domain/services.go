package domain

import (
	"context"
	"encoding/json"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
)

// The provider is consumed through per-family interfaces so handler tests
// can substitute fakes. *sendgrid.Client satisfies all of them.

// MailService sends transactional email.
type MailService interface {
	SendEmail(ctx context.Context, p sendgrid.SendEmailParams) error
}

// ContactService manages marketing contacts.
type ContactService interface {
	AddContact(ctx context.Context, contact sendgrid.Contact) (string, error)
	DeleteContacts(ctx context.Context, emails []string) (string, error)
	ListAllContacts(ctx context.Context) ([]sendgrid.Contact, error)
	ContactsByList(ctx context.Context, listID string) ([]sendgrid.Contact, error)
}

// ListService manages marketing contact lists and their membership.
type ListService interface {
	CreateList(ctx context.Context, name string) (sendgrid.List, error)
	DeleteList(ctx context.Context, listID string) error
	ListLists(ctx context.Context) ([]sendgrid.List, error)
	AddContactsToList(ctx context.Context, listID string, emails []string) (string, error)
	RemoveContactsFromList(ctx context.Context, listID string, emails []string) error
}

// TemplateService manages transactional templates and their versions.
type TemplateService interface {
	CreateTemplate(ctx context.Context, p sendgrid.CreateTemplateParams) (sendgrid.Template, error)
	GetTemplate(ctx context.Context, templateID string) (sendgrid.Template, error)
	DeleteTemplate(ctx context.Context, templateID string) error
	UpdateTemplate(ctx context.Context, templateID, name string) (sendgrid.Template, error)
	DuplicateTemplate(ctx context.Context, templateID, name string) (sendgrid.Template, error)
	ListTemplates(ctx context.Context, p sendgrid.ListTemplatesParams) (sendgrid.TemplatePage, error)
	CreateTemplateVersion(ctx context.Context, templateID string, p sendgrid.TemplateVersionParams) (sendgrid.TemplateVersion, error)
	GetTemplateVersion(ctx context.Context, templateID, versionID string) (sendgrid.TemplateVersion, error)
	UpdateTemplateVersion(ctx context.Context, templateID, versionID string, p sendgrid.TemplateVersionParams) (sendgrid.TemplateVersion, error)
	DeleteTemplateVersion(ctx context.Context, templateID, versionID string) error
	ActivateTemplateVersion(ctx context.Context, templateID, versionID string) (sendgrid.TemplateVersion, error)
}

// CampaignService manages marketing campaigns.
type CampaignService interface {
	CreateCampaign(ctx context.Context, p sendgrid.CreateCampaignParams) (sendgrid.Campaign, error)
	ScheduleCampaign(ctx context.Context, campaignID, sendAt string) error
	CampaignStats(ctx context.Context, campaignID string) (json.RawMessage, error)
}

// SingleSendService manages single sends.
type SingleSendService interface {
	CreateSingleSend(ctx context.Context, p sendgrid.SingleSendParams) (sendgrid.SingleSend, error)
	ScheduleSingleSend(ctx context.Context, singleSendID, sendAt string) (sendgrid.SingleSend, error)
	GetSingleSend(ctx context.Context, singleSendID string) (sendgrid.SingleSend, error)
	ListSingleSends(ctx context.Context) ([]sendgrid.SingleSend, error)
}

// AccountService covers account-level reads: validation, statistics, and
// verified-sender / suppression-group listings.
type AccountService interface {
	ValidateEmail(ctx context.Context, email, source string) (json.RawMessage, error)
	GlobalStats(ctx context.Context, startDate, endDate, aggregatedBy string) ([]sendgrid.StatsPeriod, error)
	VerifiedSenders(ctx context.Context) (json.RawMessage, error)
	SuppressionGroups(ctx context.Context) (json.RawMessage, error)
}
