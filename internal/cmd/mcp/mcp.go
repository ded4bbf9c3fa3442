// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gridware/sendgrid-mcp/internal/platform/config"
	"github.com/gridware/sendgrid-mcp/internal/platform/otel"
	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/gridware/sendgrid-mcp/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	APIKey    string        `env:"SENDGRID_API_KEY"`
	BaseURL   string        `env:"SENDGRID_BASE_URL"`
	Timeout   time.Duration `env:"SENDGRID_TIMEOUT"`
	HTTPAddr  string        `env:"SENDGRID_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string        `env:"SENDGRID_MCP_TRANSPORT" envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config. The lookup
// function overrides process environment so tests can inject values.
func ParseConfig(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if lookup != nil {
		if value, ok := lookup("SENDGRID_API_KEY"); ok {
			cfg.APIKey = value
		}
		if value, ok := lookup("SENDGRID_BASE_URL"); ok {
			cfg.BaseURL = value
		}
		if value, ok := lookup("SENDGRID_MCP_HTTP_ADDR"); ok {
			cfg.HTTPAddr = value
		}
		if value, ok := lookup("SENDGRID_MCP_TRANSPORT"); ok {
			cfg.Transport = value
		}
	}

	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "SendGrid API base URL")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is required")
	}

	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	client, err := sendgrid.NewClient(sendgrid.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return err
	}

	return service.Run(ctx, service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	}, service.NewServices(client))
}
