package service

import (
	"fmt"

	"github.com/gridware/sendgrid-mcp/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mcpRegistrationTarget is the subset of the MCP server the tool modules
// need for registration. Tests substitute a recording fake.
type mcpRegistrationTarget interface {
	AddTool(tool *mcp.Tool, handler any) error
}

func registerTool(target mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if err := target.AddTool(tool, handler); err != nil {
		return fmt.Errorf("add tool %q: %w", tool.Name, err)
	}
	return nil
}

func registerMailTools(target mcpRegistrationTarget, service domain.MailService) error {
	return registerTool(target, domain.SendEmailTool(), domain.SendEmailHandler(service))
}

func registerContactTools(target mcpRegistrationTarget, service domain.ContactService) error {
	if err := registerTool(target, domain.ContactAddTool(), domain.ContactAddHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.ContactDeleteTool(), domain.ContactDeleteHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.ContactListTool(), domain.ContactListHandler(service)); err != nil {
		return err
	}
	return registerTool(target, domain.ContactsByListTool(), domain.ContactsByListHandler(service))
}

func registerListTools(target mcpRegistrationTarget, service domain.ListService) error {
	if err := registerTool(target, domain.ListCreateTool(), domain.ListCreateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.ListDeleteTool(), domain.ListDeleteHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.ListIndexTool(), domain.ListIndexHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.ListAddContactsTool(), domain.ListAddContactsHandler(service)); err != nil {
		return err
	}
	return registerTool(target, domain.ListRemoveContactsTool(), domain.ListRemoveContactsHandler(service))
}

func registerTemplateTools(target mcpRegistrationTarget, service domain.TemplateService) error {
	if err := registerTool(target, domain.TemplateCreateTool(), domain.TemplateCreateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateGetTool(), domain.TemplateGetHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateDeleteTool(), domain.TemplateDeleteHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateUpdateTool(), domain.TemplateUpdateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateDuplicateTool(), domain.TemplateDuplicateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateListTool(), domain.TemplateListHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateVersionCreateTool(), domain.TemplateVersionCreateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateVersionGetTool(), domain.TemplateVersionGetHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateVersionUpdateTool(), domain.TemplateVersionUpdateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.TemplateVersionDeleteTool(), domain.TemplateVersionDeleteHandler(service)); err != nil {
		return err
	}
	return registerTool(target, domain.TemplateVersionActivateTool(), domain.TemplateVersionActivateHandler(service))
}

func registerCampaignTools(target mcpRegistrationTarget, service domain.CampaignService) error {
	if err := registerTool(target, domain.CampaignCreateTool(), domain.CampaignCreateHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.CampaignScheduleTool(), domain.CampaignScheduleHandler(service)); err != nil {
		return err
	}
	return registerTool(target, domain.CampaignStatsTool(), domain.CampaignStatsHandler(service))
}

func registerSingleSendTools(target mcpRegistrationTarget, service domain.SingleSendService) error {
	if err := registerTool(target, domain.SendToListTool(), domain.SendToListHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.SingleSendGetTool(), domain.SingleSendGetHandler(service)); err != nil {
		return err
	}
	return registerTool(target, domain.SingleSendListTool(), domain.SingleSendListHandler(service))
}

func registerAccountTools(target mcpRegistrationTarget, service domain.AccountService) error {
	if err := registerTool(target, domain.ValidateEmailTool(), domain.ValidateEmailHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.StatsTool(), domain.StatsHandler(service)); err != nil {
		return err
	}
	if err := registerTool(target, domain.VerifiedSendersTool(), domain.VerifiedSendersHandler(service)); err != nil {
		return err
	}
	return registerTool(target, domain.SuppressionGroupsTool(), domain.SuppressionGroupsHandler(service))
}
