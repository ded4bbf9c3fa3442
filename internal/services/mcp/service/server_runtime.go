package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gridware/sendgrid-mcp/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TransportKind selects how the MCP server talks to clients.
type TransportKind string

const (
	// TransportStdio serves MCP over stdin/stdout for local tool hosts.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config carries the runtime options for serving MCP.
type Config struct {
	// Transport selects stdio or http. Empty defaults to stdio.
	Transport TransportKind
	// HTTPAddr is the listen address for the HTTP transport.
	// Empty defaults to localhost-only binding.
	HTTPAddr string
}

// Run is the service entrypoint for MCP and blocks until context
// cancellation. Transport selection happens here so startup can choose
// stdio for local tools and HTTP for remote integrations.
func Run(ctx context.Context, cfg Config, services Services) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, services, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg, services)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, services Services, transport mcp.Transport) error {
	server, err := New(services)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not reported
// as an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// runWithHTTPTransport serves the MCP server over streamable HTTP. Every
// request shares the one configured server; sessions are managed by the
// SDK handler.
func runWithHTTPTransport(ctx context.Context, cfg Config, services Services) error {
	// Default to localhost-only binding for security
	httpAddr := cfg.HTTPAddr
	if httpAddr == "" {
		httpAddr = "localhost:8081"
	}

	server, err := New(services)
	if err != nil {
		return err
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server.mcpServer
	}, nil)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("mcp http transport listening on %s", httpAddr)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP over HTTP: %w", err)
	}
}
