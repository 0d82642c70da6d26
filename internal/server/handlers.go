package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-filter/internal/bitmap"
	"github.com/ironsheep/image-filter/internal/filter"
	"github.com/ironsheep/image-filter/internal/stats"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_filter").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_filter":
		return s.handleImageFilter(args)
	case "image_summary":
		return s.handleImageSummary(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// parseModes converts filter names into modes, rejecting the whole list if any
// name is unknown.
func parseModes(names []string) ([]filter.Mode, error) {
	modes := make([]filter.Mode, 0, len(names))
	for _, n := range names {
		m, err := filter.ParseMode(n)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

// loadFiltered returns a private grid for path with the named filters applied.
func (s *Server) loadFiltered(path string, names []string) (*filter.Grid, []filter.Mode, error) {
	modes, err := parseModes(names)
	if err != nil {
		return nil, nil, err
	}
	g, err := bitmap.LoadGrid(s.cache, path)
	if err != nil {
		return nil, nil, err
	}
	if err := filter.ApplyAll(g, modes...); err != nil {
		return nil, nil, err
	}
	return g, modes, nil
}

// === image_load ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return bitmap.LoadInfo(s.cache, a.Path)
}

// === image_filter ===

type imageFilterArgs struct {
	Path       string   `json:"path"`
	Filters    []string `json:"filters"`
	OutputPath string   `json:"output_path"`
}

// FilterResult describes the output of the image_filter tool.
//
// Exactly one of OutputPath and ImageBase64 is set: the file that was written,
// or the filtered image inlined as PNG when no output path was given.
type FilterResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Filters     []string `json:"filters"`
	OutputPath  string   `json:"output_path,omitempty"`
	ImageBase64 string   `json:"image_base64,omitempty"`
	MimeType    string   `json:"mime_type,omitempty"`
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Filters) == 0 {
		return nil, errors.New("at least one filter is required")
	}

	g, modes, err := s.loadFiltered(a.Path, a.Filters)
	if err != nil {
		return nil, err
	}

	result := &FilterResult{
		Width:   g.Width(),
		Height:  g.Height(),
		Filters: modeNames(modes),
	}

	if a.OutputPath != "" {
		if err := bitmap.Save(a.OutputPath, g); err != nil {
			return nil, err
		}
		// A stale decode of the overwritten file must not be served later.
		s.cache.Evict(a.OutputPath)
		result.OutputPath = a.OutputPath
		return result, nil
	}

	var buf bytes.Buffer
	if err := bitmap.Encode(&buf, g, imaging.PNG); err != nil {
		return nil, err
	}
	result.ImageBase64 = base64.StdEncoding.EncodeToString(buf.Bytes())
	result.MimeType = "image/png"
	return result, nil
}

// === image_summary ===

type imageSummaryArgs struct {
	Path    string   `json:"path"`
	Filters []string `json:"filters"`
	Count   int      `json:"count"`
}

func (s *Server) handleImageSummary(args json.RawMessage) (interface{}, error) {
	var a imageSummaryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}

	g, _, err := s.loadFiltered(a.Path, a.Filters)
	if err != nil {
		return nil, err
	}
	return stats.Summarize(g, a.Count), nil
}

func modeNames(modes []filter.Mode) []string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}
