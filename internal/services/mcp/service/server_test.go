package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gridware/sendgrid-mcp/internal/sendgrid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// recordingRegistrationTarget collects registered tool names without a
// live MCP server.
type recordingRegistrationTarget struct {
	tools []string
}

func (r *recordingRegistrationTarget) AddTool(tool *mcp.Tool, handler any) error {
	if tool == nil {
		return nil
	}
	r.tools = append(r.tools, tool.Name)
	return nil
}

func testServices(t *testing.T) Services {
	t.Helper()
	client, err := sendgrid.NewClient(sendgrid.Config{APIKey: "SG.test-key"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewServices(client)
}

// TestRegistrationModulesCoverEveryTool ensures each tool module registers
// its tools exactly once under the expected name.
func TestRegistrationModulesCoverEveryTool(t *testing.T) {
	expected := []string{
		"send_email",
		"add_contact",
		"delete_contacts",
		"list_contacts",
		"get_contacts_by_list",
		"create_contact_list",
		"delete_list",
		"list_contact_lists",
		"add_contacts_to_list",
		"remove_contacts_from_list",
		"create_template",
		"get_template",
		"delete_template",
		"update_template",
		"duplicate_template",
		"list_templates",
		"create_template_version",
		"get_template_version",
		"update_template_version",
		"delete_template_version",
		"activate_template_version",
		"create_campaign",
		"schedule_campaign",
		"get_campaign_stats",
		"send_to_list",
		"get_single_send",
		"list_single_sends",
		"validate_email",
		"get_stats",
		"list_verified_senders",
		"list_suppression_groups",
	}

	target := &recordingRegistrationTarget{}
	for _, module := range newMCPRegistrationModules(testServices(t)) {
		if err := module.register(target); err != nil {
			t.Fatalf("register module %q: %v", module.name, err)
		}
	}

	if len(target.tools) != len(expected) {
		t.Fatalf("expected %d registered tools, got %d: %v", len(expected), len(target.tools), target.tools)
	}

	registered := make(map[string]int, len(target.tools))
	for _, name := range target.tools {
		registered[name]++
	}
	for _, name := range expected {
		if registered[name] != 1 {
			t.Errorf("expected tool %q registered exactly once, got %d", name, registered[name])
		}
	}
}

// TestNewRegistersAllTools ensures New produces a server where every tool
// handler type is supported by the registration adapter.
func TestNewRegistersAllTools(t *testing.T) {
	server, err := New(testServices(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if server.mcpServer == nil {
		t.Fatal("expected configured mcp server")
	}
}

// TestAddMCPToolRejectsUnknownHandler ensures unsupported handler types
// fail registration instead of silently dropping a tool.
func TestAddMCPToolRejectsUnknownHandler(t *testing.T) {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.1"}, nil)

	err := addMCPTool(mcpServer, &mcp.Tool{Name: "bogus_tool"}, func() {})
	if err == nil {
		t.Fatal("expected error for unsupported handler type")
	}
	if !strings.Contains(err.Error(), "bogus_tool") {
		t.Errorf("expected tool name in error, got: %v", err)
	}
}

// TestServerListsToolsOverSession connects an in-memory client and
// verifies the server advertises the registered tools.
func TestServerListsToolsOverSession(t *testing.T) {
	server, err := New(testServices(t))
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	if len(tools.Tools) != 31 {
		t.Fatalf("expected 31 advertised tools, got %d", len(tools.Tools))
	}

	names := make(map[string]bool, len(tools.Tools))
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"send_email", "create_template", "send_to_list", "validate_email"} {
		if !names[want] {
			t.Errorf("expected tool %q to be advertised", want)
		}
	}

	cancel()
	if err := <-serveErr; err != nil {
		t.Fatalf("serve returned error: %v", err)
	}
}
