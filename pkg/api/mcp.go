package api

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/barlaman-registry/pkg/kit"
)

// RegisterMCPTools registers the three Barlaman MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, svc *Service) {
	registerSearchTranscripts(srv, svc)
	registerResolveSpeaker(srv, svc)
	registerMPHistory(srv, svc)
}

func registerSearchTranscripts(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("search_transcripts",
		mcp.WithDescription("Search parliamentary session transcripts (structured interventions and raw minutes) for an Arabic or Latin query."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query, at least 2 characters")),
	)

	kit.RegisterMCPTool(srv, tool, searchEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		query, _ := args["query"].(string)
		return &kit.MCPDecodeResult{Request: &searchReq{Query: query}}, nil
	})
}

func registerResolveSpeaker(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("resolve_speaker",
		mcp.WithDescription("Resolve a raw transcript speaker label (honorifics, annotations, spelling variants) to a member of parliament."),
		mcp.WithString("speaker", mcp.Required(), mcp.Description("The speaker label as it appears in the transcript")),
	)

	kit.RegisterMCPTool(srv, tool, resolveEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		speaker, _ := args["speaker"].(string)
		return &kit.MCPDecodeResult{Request: &resolveReq{Speaker: speaker}}, nil
	})
}

func registerMPHistory(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool("mp_history",
		mcp.WithDescription("Intervention history for one member of parliament: sessions, counts, summary points and topic interests."),
		mcp.WithString("mp_id", mcp.Required(), mcp.Description("Roster id of the member (e.g. mp_12)")),
	)

	kit.RegisterMCPTool(srv, tool, historyEndpoint(svc), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		id, _ := args["mp_id"].(string)
		return &kit.MCPDecodeResult{Request: &historyReq{MPID: id}}, nil
	})
}
