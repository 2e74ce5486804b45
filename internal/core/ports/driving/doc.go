// Package driving defines the interfaces the core exposes to external
// actors (CLI, TUI, MCP server).
package driving
