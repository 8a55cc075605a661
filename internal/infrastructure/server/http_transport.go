package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/transport"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/infrastructure/logging"
)

// replyTimeout bounds how long a POST waits for the handler's response.
// Nothing in the tool path blocks, so this only trips on bugs.
const replyTimeout = 10 * time.Second

// HTTPTransport accepts JSON-RPC requests as HTTP POST bodies and returns
// the response in the HTTP response body. Responses are correlated to the
// in-flight POST via the request id.
type HTTPTransport struct {
	server    *http.Server
	logger    *logging.Logger
	handler   transport.MessageHandler
	pending   map[string]chan shared.JSONRPCResponse
	mu        sync.Mutex
	closeCh   chan struct{}
	closeOnce sync.Once
}

// NewHTTPTransport creates a new HTTP transport listening on addr.
func NewHTTPTransport(addr string, logger *logging.Logger) *HTTPTransport {
	if logger == nil {
		logger = logging.NewNop()
	}
	t := &HTTPTransport{
		logger:  logger,
		pending: make(map[string]chan shared.JSONRPCResponse),
		closeCh: make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", t.handleRequest)

	t.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	return t
}

// Start starts the transport
func (t *HTTPTransport) Start(ctx context.Context, handler transport.MessageHandler) error {
	t.handler = handler

	go func() {
		<-ctx.Done()
		_ = t.Close()
	}()

	go func() {
		if err := t.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			t.logger.Error("http server error", logging.Fields{"error": err.Error()})
		}
	}()

	return nil
}

// Send routes a response back to the POST that is waiting for it.
func (t *HTTPTransport) Send(ctx context.Context, message shared.JSONRPCMessage) error {
	response, ok := message.(shared.JSONRPCResponse)
	if !ok {
		// No push channel exists; non-response messages have nowhere to go.
		return nil
	}

	t.mu.Lock()
	ch, exists := t.pending[idKey(response.ID)]
	t.mu.Unlock()

	if !exists {
		return errors.Errorf("no pending request for id %v", response.ID)
	}

	select {
	case ch <- response:
		return nil
	default:
		return errors.Errorf("reply channel full for id %v", response.ID)
	}
}

// Close closes the transport
func (t *HTTPTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closeCh)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = t.server.Shutdown(shutdownCtx)
	})
	return err
}

// handleRequest handles one JSON-RPC message per POST.
func (t *HTTPTransport) handleRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session := domain.NewClientSession(r.UserAgent())
	logger := t.logger.With(logging.Fields{"client_session": session.ID})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Error reading request body", http.StatusBadRequest)
		return
	}

	message, perr := parseMessage(body)
	if perr != nil || message == nil {
		logger.Warn("invalid message", logging.Fields{"error": fmt.Sprintf("%v", perr)})
		writeJSON(w, shared.JSONRPCResponse{
			JSONRPC: shared.JSONRPCVersion,
			ID:      nil,
			Error: &shared.JSONRPCError{
				Code:    int(shared.ParseError),
				Message: shared.ErrorMessage(shared.ParseError),
			},
		})
		return
	}

	if message.IsNotification() {
		if t.handler != nil {
			_ = t.handler(r.Context(), message)
		}
		w.WriteHeader(http.StatusAccepted)
		return
	}

	request, ok := message.(shared.JSONRPCRequest)
	if !ok {
		// A bare response POSTed at us; nothing to do with it.
		w.WriteHeader(http.StatusAccepted)
		return
	}

	reply := make(chan shared.JSONRPCResponse, 1)
	key := idKey(request.ID)
	t.mu.Lock()
	t.pending[key] = reply
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		delete(t.pending, key)
		t.mu.Unlock()
	}()

	if t.handler != nil {
		if err := t.handler(r.Context(), request); err != nil {
			logger.Error("error handling message", logging.Fields{"error": err.Error()})
			writeJSON(w, shared.JSONRPCResponse{
				JSONRPC: shared.JSONRPCVersion,
				ID:      request.ID,
				Error: &shared.JSONRPCError{
					Code:    int(shared.InternalError),
					Message: shared.ErrorMessage(shared.InternalError),
				},
			})
			return
		}
	}

	select {
	case response := <-reply:
		writeJSON(w, response)
	case <-r.Context().Done():
	case <-t.closeCh:
	case <-time.After(replyTimeout):
		http.Error(w, "Timed out waiting for response", http.StatusGatewayTimeout)
	}
}

func writeJSON(w http.ResponseWriter, response shared.JSONRPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

// idKey normalizes a request id for map lookup. JSON-RPC allows string or
// numeric ids.
func idKey(id interface{}) string {
	return fmt.Sprintf("%v", id)
}
