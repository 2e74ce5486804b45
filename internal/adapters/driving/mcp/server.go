// Package mcp exposes memora over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/memora-cli/internal/core/ports/driving"
)

const (
	serverName    = "memora"
	serverVersion = "0.1.0"
)

// Server publishes the assistant and the memory collection as MCP
// tools, over stdio or streamable HTTP.
type Server struct {
	assistant driving.AssistantService
	memories  driving.MemoryService
	server    *mcp.Server
}

// NewServer wires the tool handlers over the given services.
func NewServer(assistant driving.AssistantService, memories driving.MemoryService) (*Server, error) {
	if assistant == nil {
		return nil, errors.New("assistant service is required")
	}
	if memories == nil {
		return nil, errors.New("memory service is required")
	}

	s := &Server{
		assistant: assistant,
		memories:  memories,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr. Cancelling the
// context shuts the listener down and returns nil.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr: addr,
		Handler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return s.server
		}, nil),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
