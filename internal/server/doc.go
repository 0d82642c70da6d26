// Package server implements an MCP (Model Context Protocol) server for the bitmap filters.
//
// This package provides a JSON-RPC 2.0 server that exposes the grayscale,
// reflect, blur and edge-detection filters to MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load an image and get its metadata
//   - image_filter: Apply filters in order; write a file or return base64 PNG
//   - image_summary: Mean color, achromatic flag and dominant colors,
//     optionally after filtering
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process. Every
// tool call filters a private copy, so repeated calls on the same path always
// start from the original pixels. Writing to output_path evicts that path.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
