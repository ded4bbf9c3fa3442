package service

import (
	"fmt"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/gridware/sendgrid-mcp/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "SendGrid MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

const (
	mcpMailToolsModuleName       = "mail-tools"
	mcpContactToolsModuleName    = "contact-tools"
	mcpListToolsModuleName       = "list-tools"
	mcpTemplateToolsModuleName   = "template-tools"
	mcpCampaignToolsModuleName   = "campaign-tools"
	mcpSingleSendToolsModuleName = "singlesend-tools"
	mcpAccountToolsModuleName    = "account-tools"
)

type mcpRegistrationModule struct {
	name     string
	register func(mcpRegistrationTarget) error
}

// Services carries the per-family provider interfaces the tool handlers
// consume. All fields are satisfied by a single *sendgrid.Client in
// production; tests swap in fakes per family.
type Services struct {
	Mail        domain.MailService
	Contacts    domain.ContactService
	Lists       domain.ListService
	Templates   domain.TemplateService
	Campaigns   domain.CampaignService
	SingleSends domain.SingleSendService
	Account     domain.AccountService
}

// NewServices wires every service family to the provider client.
func NewServices(client *sendgrid.Client) Services {
	return Services{
		Mail:        client,
		Contacts:    client,
		Lists:       client,
		Templates:   client,
		Campaigns:   client,
		SingleSends: client,
		Account:     client,
	}
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.SendEmailInput, domain.SendEmailResult](),
	newMCPToolRegistrar[domain.ContactAddInput, domain.ContactAddResult](),
	newMCPToolRegistrar[domain.ContactDeleteInput, domain.ContactDeleteResult](),
	newMCPToolRegistrar[domain.ContactListInput, domain.ContactListResult](),
	newMCPToolRegistrar[domain.ContactsByListInput, domain.ContactsByListResult](),
	newMCPToolRegistrar[domain.ListCreateInput, domain.ListCreateResult](),
	newMCPToolRegistrar[domain.ListDeleteInput, domain.ListDeleteResult](),
	newMCPToolRegistrar[domain.ListIndexInput, domain.ListIndexResult](),
	newMCPToolRegistrar[domain.ListAddContactsInput, domain.ListAddContactsResult](),
	newMCPToolRegistrar[domain.ListRemoveContactsInput, domain.ListRemoveContactsResult](),
	newMCPToolRegistrar[domain.TemplateCreateInput, domain.TemplateResult](),
	newMCPToolRegistrar[domain.TemplateGetInput, domain.TemplateResult](),
	newMCPToolRegistrar[domain.TemplateDeleteInput, domain.TemplateDeleteResult](),
	newMCPToolRegistrar[domain.TemplateUpdateInput, domain.TemplateResult](),
	newMCPToolRegistrar[domain.TemplateDuplicateInput, domain.TemplateResult](),
	newMCPToolRegistrar[domain.TemplateListInput, domain.TemplateListResult](),
	newMCPToolRegistrar[domain.TemplateVersionCreateInput, domain.TemplateVersionResult](),
	newMCPToolRegistrar[domain.TemplateVersionGetInput, domain.TemplateVersionResult](),
	newMCPToolRegistrar[domain.TemplateVersionUpdateInput, domain.TemplateVersionResult](),
	newMCPToolRegistrar[domain.TemplateVersionDeleteInput, domain.TemplateVersionDeleteResult](),
	newMCPToolRegistrar[domain.TemplateVersionActivateInput, domain.TemplateVersionResult](),
	newMCPToolRegistrar[domain.CampaignCreateInput, domain.CampaignCreateResult](),
	newMCPToolRegistrar[domain.CampaignScheduleInput, domain.CampaignScheduleResult](),
	newMCPToolRegistrar[domain.CampaignStatsInput, domain.CampaignStatsResult](),
	newMCPToolRegistrar[domain.SendToListInput, domain.SendToListResult](),
	newMCPToolRegistrar[domain.SingleSendGetInput, domain.SingleSendResult](),
	newMCPToolRegistrar[domain.SingleSendListInput, domain.SingleSendListResult](),
	newMCPToolRegistrar[domain.ValidateEmailInput, domain.ValidateEmailResult](),
	newMCPToolRegistrar[domain.StatsInput, domain.StatsResult](),
	newMCPToolRegistrar[domain.VerifiedSendersInput, domain.VerifiedSendersResult](),
	newMCPToolRegistrar[domain.SuppressionGroupsInput, domain.SuppressionGroupsResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(services Services) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpMailToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerMailTools(registrar, services.Mail)
			},
		},
		{
			name: mcpContactToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerContactTools(registrar, services.Contacts)
			},
		},
		{
			name: mcpListToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerListTools(registrar, services.Lists)
			},
		},
		{
			name: mcpTemplateToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerTemplateTools(registrar, services.Templates)
			},
		},
		{
			name: mcpCampaignToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerCampaignTools(registrar, services.Campaigns)
			},
		},
		{
			name: mcpSingleSendToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerSingleSendTools(registrar, services.SingleSends)
			},
		},
		{
			name: mcpAccountToolsModuleName,
			register: func(registrar mcpRegistrationTarget) error {
				return registerAccountTools(registrar, services.Account)
			},
		},
	}
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with every tool module registered
// against the given provider services.
func New(services Services) (*Server, error) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	for _, module := range newMCPRegistrationModules(services) {
		if err := module.register(mcpServerRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return &Server{mcpServer: mcpServer}, nil
}
