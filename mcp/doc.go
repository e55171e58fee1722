// Package mcp serves PanelApp gene lookups as Model Context Protocol tools
// over stdio, so an MCP client can request the same reports as the CLI.
package mcp
