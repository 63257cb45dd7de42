// Package server implements the MCP (Model Context Protocol) server for the
// shadow-preserving background removal tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the matting
// pipeline through the MCP protocol, so MCP-compatible clients can strip
// flat studio backgrounds from product photos while keeping their natural
// drop shadows.
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
//   - matte_process: Run the full pipeline on one image, returning the
//     matted PNG plus run statistics and an optional before/after preview.
//   - matte_process_batch: Run the pipeline over up to 50 images on a
//     worker pool and return per-image outcomes plus a zip archive of the
//     processed PNGs.
//   - matte_detect_background: Estimate the background color by corner
//     averaging, dominant-color analysis, or border-ring clustering.
//   - matte_suggest_tolerance: Analyze the chroma-distance distribution and
//     suggest a color_tolerance starting point.
//   - matte_image_info: Load an image and report its metadata.
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded rasters. Rasters are
// cached by path and reused across tool calls, so tuning parameters against
// the same image does not re-decode it. The cache persists for the lifetime
// of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Inside a batch, a failing image is reported in that image's result entry
// rather than failing the whole call.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
