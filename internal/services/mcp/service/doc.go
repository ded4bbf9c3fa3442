// Package service assembles the MCP server: it binds the provider-backed
// tool handlers from the domain package to an mcp.Server through named
// registration modules, and serves the result over stdio or streamable
// HTTP.
package service
