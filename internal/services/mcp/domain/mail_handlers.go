package domain

import (
	"context"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SendEmailHandler executes a transactional send request.
func SendEmailHandler(service MailService) mcp.ToolHandlerFor[SendEmailInput, SendEmailResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SendEmailInput) (*mcp.CallToolResult, SendEmailResult, error) {
		call, err := newToolCall(ctx)
		if err != nil {
			return nil, SendEmailResult{}, err
		}
		defer call.Cancel()

		err = service.SendEmail(call.RunCtx, sendgrid.SendEmailParams{
			To:                  input.To,
			From:                input.From,
			Subject:             input.Subject,
			Text:                input.Text,
			HTML:                input.HTML,
			TemplateID:          input.TemplateID,
			DynamicTemplateData: input.DynamicTemplateData,
		})
		if err != nil {
			return nil, SendEmailResult{}, providerError("send email", err)
		}

		result := SendEmailResult{Status: "sent", To: input.To}
		return CallToolResultWithMetadata(call.Meta), result, nil
	}
}
