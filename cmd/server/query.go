// CLAUDE:SUMMARY CLI subcommand that calls MCP tools on a running server over QUIC.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hazyhaar/barlaman-registry/pkg/mcpquic"
)

func cmdQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8431", "server address")
	tool := fs.String("tool", "search_transcripts", "tool to call: search_transcripts, resolve_speaker, mp_history")
	insecure := fs.Bool("insecure", true, "skip TLS verification (self-signed dev certs)")
	fs.Parse(args)

	value := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if value == "" {
		fmt.Fprintln(os.Stderr, "Usage: barlaman query [--addr host:port] [--tool name] <argument>")
		os.Exit(1)
	}

	var toolArgs map[string]any
	switch *tool {
	case "search_transcripts":
		toolArgs = map[string]any{"query": value}
	case "resolve_speaker":
		toolArgs = map[string]any{"speaker": value}
	case "mp_history":
		toolArgs = map[string]any{"mp_id": value}
	default:
		fmt.Fprintf(os.Stderr, "unknown tool %q\n", *tool)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := mcpquic.NewClient(*addr, mcpquic.ClientTLSConfig(*insecure))
	if err := client.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer client.Close()

	result, err := client.CallTool(ctx, *tool, toolArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "call %s: %v\n", *tool, err)
		os.Exit(1)
	}

	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
	if result.IsError {
		os.Exit(1)
	}
}
