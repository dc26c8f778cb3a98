package mcpServer

import (
	"context"
	"strings"

	"github.com/akolanti/CampusQA/internal/config"
	"github.com/akolanti/CampusQA/internal/qa"
	"github.com/akolanti/CampusQA/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type QueryInput struct {
	Query string `json:"query" jsonschema:"the question about campus events"`
}

type QueryOutput struct {
	Answer  string `json:"answer" jsonschema:"the answer or a labelled error message"`
	Outcome string `json:"outcome" jsonschema:"how the query ended, success on a normal answer"`
}

// NewServer exposes the qa service as a single mcp tool.
func NewServer(service qa.Service) *mcp.Server {
	logger := logger_i.NewLogger("mcp")
	server := mcp.NewServer(&mcp.Implementation{Name: config.MCPServerName, Version: config.MCPServerVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        config.MCPToolName,
		Description: "Answer a natural-language question about campus events.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryOutput, error) {
		if strings.TrimSpace(input.Query) == "" {
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: "query is required"}},
			}, QueryOutput{}, nil
		}

		result := service.Ask(ctx, input.Query)
		logger.Debug("Tool call answered", "outcome", result.Outcome)

		output := QueryOutput{Answer: result.Message(), Outcome: string(result.Outcome)}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: output.Answer}},
		}, output, nil
	})
	return server
}

// Run serves the tool over stdio until the client disconnects or ctx ends.
func Run(ctx context.Context, service qa.Service) error {
	return NewServer(service).Run(ctx, &mcp.StdioTransport{})
}
