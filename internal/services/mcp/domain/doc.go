// Package domain translates MCP tool calls into SendGrid provider commands.
//
// The package is intentionally explicit about that mapping:
// - declare one typed Input/Result pair per tool so the SDK derives and
//   enforces the argument schema at the protocol boundary,
// - route calls to the correct provider service interface,
// - and surface structured outputs that MCP clients can render.
//
// This keeps behavior auditable from protocol message -> provider request ->
// rendered result.
package domain
