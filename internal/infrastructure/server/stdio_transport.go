package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/transport"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/infrastructure/logging"
)

// StdioTransport implements a newline-delimited JSON-RPC transport over a
// reader/writer pair, normally stdin/stdout.
type StdioTransport struct {
	reader    *bufio.Reader
	writer    *bufio.Writer
	session   *domain.ClientSession
	logger    *logging.Logger
	handler   transport.MessageHandler
	done      chan struct{}
	closeCh   chan struct{}
	closeOnce sync.Once
	writeMu   sync.Mutex
}

// NewStdioTransport creates a transport over os.Stdin and os.Stdout.
func NewStdioTransport(logger *logging.Logger) *StdioTransport {
	return NewStreamTransport(os.Stdin, os.Stdout, logger)
}

// NewStreamTransport creates a transport over arbitrary streams. Tests use
// in-memory buffers.
func NewStreamTransport(in io.Reader, out io.Writer, logger *logging.Logger) *StdioTransport {
	if logger == nil {
		logger = logging.NewNop()
	}
	session := domain.NewClientSession("stdio")
	return &StdioTransport{
		reader:  bufio.NewReader(in),
		writer:  bufio.NewWriter(out),
		session: session,
		logger:  logger.With(logging.Fields{"client_session": session.ID}),
		done:    make(chan struct{}),
		closeCh: make(chan struct{}),
	}
}

// Session returns the client session bound to this transport.
func (t *StdioTransport) Session() *domain.ClientSession {
	return t.session
}

// Start starts the transport read loop.
func (t *StdioTransport) Start(ctx context.Context, handler transport.MessageHandler) error {
	t.handler = handler
	go t.readMessages(ctx)
	return nil
}

// Done is closed when the read loop exits (EOF or shutdown).
func (t *StdioTransport) Done() <-chan struct{} {
	return t.done
}

// Send sends a message through the transport
func (t *StdioTransport) Send(ctx context.Context, message shared.JSONRPCMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "error marshalling message")
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if _, err := t.writer.Write(data); err != nil {
		return errors.Wrap(err, "error writing message")
	}
	if err := t.writer.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "error writing newline")
	}
	if err := t.writer.Flush(); err != nil {
		return errors.Wrap(err, "error flushing writer")
	}

	return nil
}

// Close closes the transport
func (t *StdioTransport) Close() error {
	t.closeOnce.Do(func() {
		t.session.Connected = false
		close(t.closeCh)
	})
	return nil
}

// readMessages reads newline-delimited messages until EOF or close.
func (t *StdioTransport) readMessages(ctx context.Context) {
	defer close(t.done)

	for {
		select {
		case <-t.closeCh:
			return
		case <-ctx.Done():
			return
		default:
			line, err := t.reader.ReadBytes('\n')
			if err != nil {
				if err != io.EOF {
					t.logger.Error("error reading from input", logging.Fields{"error": err.Error()})
				} else {
					t.logger.Debug("input stream closed")
				}
				return
			}

			t.dispatchLine(ctx, line)
		}
	}
}

// dispatchLine parses a single line and hands it to the message handler.
// A line that isn't valid JSON gets a parse-error response; everything
// else that is malformed is logged and skipped.
func (t *StdioTransport) dispatchLine(ctx context.Context, line []byte) {
	message, perr := parseMessage(line)
	if perr != nil {
		t.logger.Warn("invalid message", logging.Fields{"error": perr.Error()})
		_ = t.Send(ctx, shared.JSONRPCResponse{
			JSONRPC: shared.JSONRPCVersion,
			ID:      nil,
			Error: &shared.JSONRPCError{
				Code:    int(shared.ParseError),
				Message: shared.ErrorMessage(shared.ParseError),
			},
		})
		return
	}
	if message == nil {
		// Blank line between messages
		return
	}

	if t.handler != nil {
		if err := t.handler(ctx, message); err != nil {
			t.logger.Error("error handling message", logging.Fields{"error": err.Error()})
		}
	}
}

// parseMessage classifies a raw line as a request, notification, or
// response. A blank line yields (nil, nil).
func parseMessage(line []byte) (shared.JSONRPCMessage, error) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var basic struct {
		JSONRPC string      `json:"jsonrpc"`
		ID      interface{} `json:"id,omitempty"`
		Method  string      `json:"method,omitempty"`
	}
	if err := json.Unmarshal(trimmed, &basic); err != nil {
		return nil, errors.Wrap(err, "invalid JSON-RPC message")
	}

	switch {
	case basic.Method != "" && basic.ID != nil:
		var request shared.JSONRPCRequest
		if err := json.Unmarshal(trimmed, &request); err != nil {
			return nil, errors.Wrap(err, "invalid JSON-RPC request")
		}
		return request, nil
	case basic.Method != "":
		var notification shared.JSONRPCNotification
		if err := json.Unmarshal(trimmed, &notification); err != nil {
			return nil, errors.Wrap(err, "invalid JSON-RPC notification")
		}
		return notification, nil
	default:
		var response shared.JSONRPCResponse
		if err := json.Unmarshal(trimmed, &response); err != nil {
			return nil, errors.Wrap(err, "invalid JSON-RPC response")
		}
		return response, nil
	}
}
