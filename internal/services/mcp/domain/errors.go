package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridware/sendgrid-mcp/internal/platform/timeouts"
	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
)

// providerError shapes a failed provider call for MCP clients. API errors
// keep the provider's own status and joined messages; deadline expiry is
// reported as a timeout so callers can tell it from a provider rejection;
// everything else stays a wrapped transport error.
func providerError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: sendgrid request timed out after %s", op, timeouts.ProviderRequest)
	}
	var apiErr *sendgrid.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", op, apiErr)
	}
	return fmt.Errorf("%s: %w", op, err)
}
