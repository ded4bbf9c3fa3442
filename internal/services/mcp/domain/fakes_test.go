package domain

import (
	"context"
	"encoding/json"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
)

type fakeMailService struct {
	calls  int
	params sendgrid.SendEmailParams
	err    error
}

func (f *fakeMailService) SendEmail(_ context.Context, p sendgrid.SendEmailParams) error {
	f.calls++
	f.params = p
	return f.err
}

type fakeContactService struct {
	calls []string

	addJobID    string
	addErr      error
	deleteJobID string
	deleteErr   error
	listResp    []sendgrid.Contact
	listErr     error
	byListResp  []sendgrid.Contact
	byListErr   error
}

func (f *fakeContactService) AddContact(_ context.Context, contact sendgrid.Contact) (string, error) {
	f.calls = append(f.calls, "add")
	return f.addJobID, f.addErr
}

func (f *fakeContactService) DeleteContacts(_ context.Context, emails []string) (string, error) {
	f.calls = append(f.calls, "delete")
	return f.deleteJobID, f.deleteErr
}

func (f *fakeContactService) ListAllContacts(_ context.Context) ([]sendgrid.Contact, error) {
	f.calls = append(f.calls, "list")
	return f.listResp, f.listErr
}

func (f *fakeContactService) ContactsByList(_ context.Context, listID string) ([]sendgrid.Contact, error) {
	f.calls = append(f.calls, "by_list")
	return f.byListResp, f.byListErr
}

type fakeListService struct {
	calls []string

	createResp sendgrid.List
	createErr  error
	deleteErr  error
	listResp   []sendgrid.List
	listErr    error
	addJobID   string
	addErr     error
	removeErr  error
}

func (f *fakeListService) CreateList(_ context.Context, name string) (sendgrid.List, error) {
	f.calls = append(f.calls, "create")
	return f.createResp, f.createErr
}

func (f *fakeListService) DeleteList(_ context.Context, listID string) error {
	f.calls = append(f.calls, "delete")
	return f.deleteErr
}

func (f *fakeListService) ListLists(_ context.Context) ([]sendgrid.List, error) {
	f.calls = append(f.calls, "list")
	return f.listResp, f.listErr
}

func (f *fakeListService) AddContactsToList(_ context.Context, listID string, emails []string) (string, error) {
	f.calls = append(f.calls, "add_contacts")
	return f.addJobID, f.addErr
}

func (f *fakeListService) RemoveContactsFromList(_ context.Context, listID string, emails []string) error {
	f.calls = append(f.calls, "remove_contacts")
	return f.removeErr
}

type fakeTemplateService struct {
	calls []string

	createResp    sendgrid.Template
	createErr     error
	getResp       sendgrid.Template
	getErr        error
	deleteErr     error
	updateResp    sendgrid.Template
	updateErr     error
	duplicateResp sendgrid.Template
	duplicateErr  error
	listResp      sendgrid.TemplatePage
	listErr       error

	versionResp      sendgrid.TemplateVersion
	versionErr       error
	versionDeleteErr error
}

func (f *fakeTemplateService) CreateTemplate(_ context.Context, p sendgrid.CreateTemplateParams) (sendgrid.Template, error) {
	f.calls = append(f.calls, "create")
	return f.createResp, f.createErr
}

func (f *fakeTemplateService) GetTemplate(_ context.Context, templateID string) (sendgrid.Template, error) {
	f.calls = append(f.calls, "get")
	return f.getResp, f.getErr
}

func (f *fakeTemplateService) DeleteTemplate(_ context.Context, templateID string) error {
	f.calls = append(f.calls, "delete")
	return f.deleteErr
}

func (f *fakeTemplateService) UpdateTemplate(_ context.Context, templateID, name string) (sendgrid.Template, error) {
	f.calls = append(f.calls, "update")
	return f.updateResp, f.updateErr
}

func (f *fakeTemplateService) DuplicateTemplate(_ context.Context, templateID, name string) (sendgrid.Template, error) {
	f.calls = append(f.calls, "duplicate")
	return f.duplicateResp, f.duplicateErr
}

func (f *fakeTemplateService) ListTemplates(_ context.Context, p sendgrid.ListTemplatesParams) (sendgrid.TemplatePage, error) {
	f.calls = append(f.calls, "list")
	return f.listResp, f.listErr
}

func (f *fakeTemplateService) CreateTemplateVersion(_ context.Context, templateID string, p sendgrid.TemplateVersionParams) (sendgrid.TemplateVersion, error) {
	f.calls = append(f.calls, "version_create")
	return f.versionResp, f.versionErr
}

func (f *fakeTemplateService) GetTemplateVersion(_ context.Context, templateID, versionID string) (sendgrid.TemplateVersion, error) {
	f.calls = append(f.calls, "version_get")
	return f.versionResp, f.versionErr
}

func (f *fakeTemplateService) UpdateTemplateVersion(_ context.Context, templateID, versionID string, p sendgrid.TemplateVersionParams) (sendgrid.TemplateVersion, error) {
	f.calls = append(f.calls, "version_update")
	return f.versionResp, f.versionErr
}

func (f *fakeTemplateService) DeleteTemplateVersion(_ context.Context, templateID, versionID string) error {
	f.calls = append(f.calls, "version_delete")
	return f.versionDeleteErr
}

func (f *fakeTemplateService) ActivateTemplateVersion(_ context.Context, templateID, versionID string) (sendgrid.TemplateVersion, error) {
	f.calls = append(f.calls, "version_activate")
	return f.versionResp, f.versionErr
}

type fakeCampaignService struct {
	calls []string

	createResp  sendgrid.Campaign
	createErr   error
	scheduleErr error
	statsResp   json.RawMessage
	statsErr    error
}

func (f *fakeCampaignService) CreateCampaign(_ context.Context, p sendgrid.CreateCampaignParams) (sendgrid.Campaign, error) {
	f.calls = append(f.calls, "create")
	return f.createResp, f.createErr
}

func (f *fakeCampaignService) ScheduleCampaign(_ context.Context, campaignID, sendAt string) error {
	f.calls = append(f.calls, "schedule")
	return f.scheduleErr
}

func (f *fakeCampaignService) CampaignStats(_ context.Context, campaignID string) (json.RawMessage, error) {
	f.calls = append(f.calls, "stats")
	return f.statsResp, f.statsErr
}

type fakeSingleSendService struct {
	calls  []string
	params sendgrid.SingleSendParams
	sendAt string

	createResp   sendgrid.SingleSend
	createErr    error
	scheduleResp sendgrid.SingleSend
	scheduleErr  error
	getResp      sendgrid.SingleSend
	getErr       error
	listResp     []sendgrid.SingleSend
	listErr      error
}

func (f *fakeSingleSendService) CreateSingleSend(_ context.Context, p sendgrid.SingleSendParams) (sendgrid.SingleSend, error) {
	f.calls = append(f.calls, "create")
	f.params = p
	return f.createResp, f.createErr
}

func (f *fakeSingleSendService) ScheduleSingleSend(_ context.Context, singleSendID, sendAt string) (sendgrid.SingleSend, error) {
	f.calls = append(f.calls, "schedule")
	f.sendAt = sendAt
	return f.scheduleResp, f.scheduleErr
}

func (f *fakeSingleSendService) GetSingleSend(_ context.Context, singleSendID string) (sendgrid.SingleSend, error) {
	f.calls = append(f.calls, "get")
	return f.getResp, f.getErr
}

func (f *fakeSingleSendService) ListSingleSends(_ context.Context) ([]sendgrid.SingleSend, error) {
	f.calls = append(f.calls, "list")
	return f.listResp, f.listErr
}

type fakeAccountService struct {
	calls []string

	validateResp json.RawMessage
	validateErr  error
	statsResp    []sendgrid.StatsPeriod
	statsErr     error
	sendersResp  json.RawMessage
	sendersErr   error
	groupsResp   json.RawMessage
	groupsErr    error
}

func (f *fakeAccountService) ValidateEmail(_ context.Context, email, source string) (json.RawMessage, error) {
	f.calls = append(f.calls, "validate")
	return f.validateResp, f.validateErr
}

func (f *fakeAccountService) GlobalStats(_ context.Context, startDate, endDate, aggregatedBy string) ([]sendgrid.StatsPeriod, error) {
	f.calls = append(f.calls, "stats")
	return f.statsResp, f.statsErr
}

func (f *fakeAccountService) VerifiedSenders(_ context.Context) (json.RawMessage, error) {
	f.calls = append(f.calls, "senders")
	return f.sendersResp, f.sendersErr
}

func (f *fakeAccountService) SuppressionGroups(_ context.Context) (json.RawMessage, error) {
	f.calls = append(f.calls, "groups")
	return f.groupsResp, f.groupsErr
}
