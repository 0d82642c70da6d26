package server

import "github.com/ironsheep/image-filter/internal/filter"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	filterNames := modeNames(filter.Modes())

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file (BMP, PNG, JPEG, GIF or TIFF) and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_filter",
			Description: "Apply one or more filters to an image in the order given. " +
				"grayscale averages the channels, reflect mirrors each row, blur is a 3x3 box blur, " +
				"edges is a per-channel Sobel edge map. Writes to output_path when given, " +
				"otherwise returns the result as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"filters": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
							"enum": filterNames,
						},
						"minItems":    1,
						"description": "Filters to apply, in order",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional destination file; the format follows its extension",
					},
				},
				"required": []string{"path", "filters"},
			},
		},
		{
			Name:        "image_summary",
			Description: "Summarize the colors of an image, optionally after applying filters: mean color, whether it is achromatic, and the dominant colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"filters": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
							"enum": filterNames,
						},
						"description": "Optional filters to apply before summarizing",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
