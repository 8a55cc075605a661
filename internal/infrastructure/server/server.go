package server

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/handler"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/transport"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/infrastructure/logging"
)

// Server speaks JSON-RPC over a transport and routes MCP methods to the
// tool handler.
type Server struct {
	info        shared.ServerInfo
	toolHandler handler.ToolHandler
	logger      *logging.Logger

	transport     transport.Transport
	isInitialized bool
	mu            sync.RWMutex
}

// NewServer creates a new protocol server.
func NewServer(name, version string, tools handler.ToolHandler, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Server{
		info:        shared.ServerInfo{Name: name, Version: version},
		toolHandler: tools,
		logger:      logger,
	}
}

// Connect connects the server to a transport
func (s *Server) Connect(t transport.Transport) error {
	s.transport = t
	return nil
}

// Start starts the server with the given context
func (s *Server) Start(ctx context.Context) error {
	if s.transport == nil {
		return errors.New("no transport specified")
	}
	return s.transport.Start(ctx, s.HandleMessage)
}

// Stop stops the server
func (s *Server) Stop() error {
	if s.transport == nil {
		return nil
	}
	return s.transport.Close()
}

// HandleMessage processes an incoming JSON-RPC message.
func (s *Server) HandleMessage(ctx context.Context, message shared.JSONRPCMessage) error {
	if message.IsResponse() {
		return nil
	}

	if notification, ok := message.(shared.JSONRPCNotification); ok {
		s.logger.Debug("notification received", logging.Fields{"method": notification.Method})
		return nil
	}

	req, ok := message.(shared.JSONRPCRequest)
	if !ok {
		return errors.New("invalid message type")
	}

	if strings.HasPrefix(req.Method, shared.NotificationPrefix) {
		s.logger.Debug("notification received", logging.Fields{"method": req.Method})
		return nil
	}

	s.logger.Debug("request received", logging.Fields{"method": req.Method})

	switch req.Method {
	case shared.MethodInitialize:
		return s.handleInitialize(ctx, req)
	case shared.MethodPing:
		return s.sendResponse(ctx, req, struct{}{})
	case shared.MethodShutdown:
		return s.handleShutdown(ctx, req)
	case shared.MethodListTools:
		return s.handleListTools(ctx, req)
	case shared.MethodCallTool:
		return s.handleCallTool(ctx, req)
	default:
		return s.sendErrorResponse(ctx, req, shared.MethodNotFound, shared.ErrorMessage(shared.MethodNotFound))
	}
}

// handleInitialize handles the initialize method
func (s *Server) handleInitialize(ctx context.Context, req shared.JSONRPCRequest) error {
	s.mu.Lock()
	s.isInitialized = true
	s.mu.Unlock()

	result := shared.InitializeResult{
		ProtocolVersion: shared.ProtocolVersion,
		ServerInfo:      s.info,
		Capabilities: shared.Capabilities{
			Tools: &shared.ToolsCapability{},
		},
	}

	return s.sendResponse(ctx, req, result)
}

// handleShutdown handles the shutdown method
func (s *Server) handleShutdown(ctx context.Context, req shared.JSONRPCRequest) error {
	s.mu.Lock()
	s.isInitialized = false
	s.mu.Unlock()

	return s.sendResponse(ctx, req, nil)
}

// handleListTools handles the tools/list method
func (s *Server) handleListTools(ctx context.Context, req shared.JSONRPCRequest) error {
	tools, err := s.toolHandler.ListTools(ctx)
	if err != nil {
		return s.sendErrorResponse(ctx, req, shared.InternalError, err.Error())
	}

	return s.sendResponse(ctx, req, shared.ListToolsResult{Tools: tools})
}

// handleCallTool handles the tools/call method. Tool-level failures never
// reach the JSON-RPC error channel; the handler renders them as text.
func (s *Server) handleCallTool(ctx context.Context, req shared.JSONRPCRequest) error {
	var params shared.CallToolParams
	if err := unmarshalParams(req.Params, &params); err != nil {
		return s.sendErrorResponse(ctx, req, shared.InvalidParams, shared.ErrorMessage(shared.InvalidParams))
	}
	if params.Name == "" {
		return s.sendErrorResponse(ctx, req, shared.InvalidParams, "Missing or invalid 'name' parameter")
	}

	content, err := s.toolHandler.CallTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.sendErrorResponse(ctx, req, shared.InternalError, err.Error())
	}

	return s.sendResponse(ctx, req, shared.CallToolResult{Content: content})
}

// sendResponse sends a JSON-RPC response
func (s *Server) sendResponse(ctx context.Context, req shared.JSONRPCRequest, result interface{}) error {
	response := shared.JSONRPCResponse{
		JSONRPC: shared.JSONRPCVersion,
		ID:      req.ID,
		Result:  result,
	}

	return s.transport.Send(ctx, response)
}

// sendErrorResponse sends a JSON-RPC error response
func (s *Server) sendErrorResponse(ctx context.Context, req shared.JSONRPCRequest, code shared.ErrorCode, message string) error {
	response := shared.JSONRPCResponse{
		JSONRPC: shared.JSONRPCVersion,
		ID:      req.ID,
		Error: &shared.JSONRPCError{
			Code:    int(code),
			Message: message,
		},
	}

	return s.transport.Send(ctx, response)
}

// unmarshalParams unmarshals request parameters
func unmarshalParams(params json.RawMessage, target interface{}) error {
	if len(params) == 0 {
		return errors.New("missing params")
	}
	return json.Unmarshal(params, target)
}
