package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/domain/shared"
	"github.com/danieldunderfelt/ai-therapist-mcp/internal/usecases/support"
)

// wireResponse mirrors shared.JSONRPCResponse with the result kept raw so
// tests can decode it into method-specific shapes.
type wireResponse struct {
	JSONRPC string               `json:"jsonrpc"`
	ID      interface{}          `json:"id"`
	Result  json.RawMessage      `json:"result,omitempty"`
	Error   *shared.JSONRPCError `json:"error,omitempty"`
}

func newTestServer(t *testing.T) (*Server, *StdioTransport, *bytes.Buffer) {
	t.Helper()
	service := support.NewService(support.Config{Sessions: NewInMemorySessionStore()})
	srv := NewServer("ai-therapist-mcp", "test", service, nil)

	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(""), &out, nil)
	require.NoError(t, srv.Connect(tr))
	return srv, tr, &out
}

// roundTrip feeds one raw JSON-RPC line through the server and returns the
// single response it wrote.
func roundTrip(t *testing.T, srv *Server, out *bytes.Buffer, raw string) wireResponse {
	t.Helper()
	out.Reset()

	message, err := parseMessage([]byte(raw))
	require.NoError(t, err)
	require.NoError(t, srv.HandleMessage(context.Background(), message))

	line := strings.TrimSpace(out.String())
	require.NotEmpty(t, line, "expected a response line")

	var resp wireResponse
	require.NoError(t, json.Unmarshal([]byte(line), &resp))
	assert.Equal(t, shared.JSONRPCVersion, resp.JSONRPC)
	return resp
}

func TestInitializeRoundTrip(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","clientInfo":{"name":"test-client","version":"0.1.0"}}}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, float64(1), resp.ID)

	var result shared.InitializeResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, shared.ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "ai-therapist-mcp", result.ServerInfo.Name)
	assert.NotNil(t, result.Capabilities.Tools)
}

func TestPingReturnsEmptyResult(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":"ping-1","method":"ping"}`)
	require.Nil(t, resp.Error)
	assert.Equal(t, "ping-1", resp.ID)
	assert.JSONEq(t, `{}`, string(resp.Result))
}

func TestListToolsReturnsSixToolsInOrder(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Nil(t, resp.Error)

	var result shared.ListToolsResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %s has no input schema", tool.Name)
	}
	assert.Equal(t, []string{
		support.ToolRequestEmotionalSupport,
		support.ToolCrisisIntervention,
		support.ToolDailyCheckIn,
		support.ToolGetCopingStrategies,
		support.ToolPositiveAffirmations,
		support.ToolPeerSupportConnection,
	}, names)
}

func TestCallToolRoundTrip(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"request_emotional_support","arguments":{"mood":"anxious","situation":"big demo in an hour"}}}`)
	require.Nil(t, resp.Error)

	var result struct {
		Content []shared.TextContent `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Contains(t, result.Content[0].Text, "Emotional Support")
	assert.Contains(t, result.Content[0].Text, "big demo in an hour")
}

func TestCallToolUnknownToolStaysInResultChannel(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"nonexistent_tool","arguments":{}}}`)
	require.Nil(t, resp.Error, "unknown tools are reported as text, not JSON-RPC errors")

	var result struct {
		Content []shared.TextContent `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "Error: Unknown tool: nonexistent_tool", result.Content[0].Text)
}

func TestCallToolMissingParams(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":5,"method":"tools/call"}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, int(shared.InvalidParams), resp.Error.Code)
}

func TestCallToolMissingName(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"arguments":{"mood":"sad"}}}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, int(shared.InvalidParams), resp.Error.Code)
	assert.Equal(t, "Missing or invalid 'name' parameter", resp.Error.Message)
}

func TestUnknownMethodReturnsMethodNotFound(t *testing.T) {
	srv, _, out := newTestServer(t)

	resp := roundTrip(t, srv, out, `{"jsonrpc":"2.0","id":7,"method":"resources/list"}`)
	require.NotNil(t, resp.Error)
	assert.Equal(t, int(shared.MethodNotFound), resp.Error.Code)
}

func TestNotificationsProduceNoResponse(t *testing.T) {
	srv, _, out := newTestServer(t)

	for _, raw := range []string{
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":8,"method":"notifications/cancelled"}`,
	} {
		out.Reset()
		message, err := parseMessage([]byte(raw))
		require.NoError(t, err)
		require.NoError(t, srv.HandleMessage(context.Background(), message))
		assert.Empty(t, out.String(), "notification %q must not get a response", raw)
	}
}

func TestResponsesAreIgnored(t *testing.T) {
	srv, _, out := newTestServer(t)

	message, err := parseMessage([]byte(`{"jsonrpc":"2.0","id":9,"result":{}}`))
	require.NoError(t, err)
	require.NoError(t, srv.HandleMessage(context.Background(), message))
	assert.Empty(t, out.String())
}

func TestDispatchLineInvalidJSON(t *testing.T) {
	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(""), &out, nil)

	tr.dispatchLine(context.Background(), []byte("{not json}\n"))

	var resp wireResponse
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, int(shared.ParseError), resp.Error.Code)
	assert.Nil(t, resp.ID)
}

func TestDispatchLineBlankLine(t *testing.T) {
	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(""), &out, nil)

	tr.dispatchLine(context.Background(), []byte("   \n"))
	assert.Empty(t, out.String())
}

func TestStreamTransportSendAppendsNewline(t *testing.T) {
	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(""), &out, nil)

	err := tr.Send(context.Background(), shared.JSONRPCResponse{
		JSONRPC: shared.JSONRPCVersion,
		ID:      1,
		Result:  struct{}{},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestStdioEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n"

	service := support.NewService(support.Config{Sessions: NewInMemorySessionStore()})
	srv := NewServer("ai-therapist-mcp", "test", service, nil)

	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(input), &out, nil)
	require.NoError(t, srv.Connect(tr))
	require.NoError(t, srv.Start(context.Background()))

	select {
	case <-tr.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("transport did not drain its input")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "two requests in, two responses out")

	var first, second wireResponse
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, float64(1), first.ID)
	assert.Equal(t, float64(2), second.ID)
}
