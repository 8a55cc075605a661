package shared

import (
	"encoding/json"
	"testing"
)

func TestJSONRPCRequestUnmarshal(t *testing.T) {
	jsonData := `{
		"jsonrpc": "2.0",
		"id": 1,
		"method": "tools/call",
		"params": {"name": "daily_check_in", "arguments": {"energy_level": 7}}
	}`

	var req JSONRPCRequest
	if err := json.Unmarshal([]byte(jsonData), &req); err != nil {
		t.Fatalf("Failed to unmarshal request: %v", err)
	}

	if req.JSONRPC != "2.0" {
		t.Errorf("Expected JSONRPC to be '2.0', got '%s'", req.JSONRPC)
	}
	if req.ID != float64(1) {
		t.Errorf("Expected ID to be 1, got '%v'", req.ID)
	}
	if req.Method != "tools/call" {
		t.Errorf("Expected Method to be 'tools/call', got '%s'", req.Method)
	}

	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		t.Fatalf("Failed to unmarshal params: %v", err)
	}
	if params.Name != "daily_check_in" {
		t.Errorf("Expected tool name 'daily_check_in', got '%s'", params.Name)
	}
	if params.Arguments["energy_level"] != float64(7) {
		t.Errorf("Expected energy_level 7, got '%v'", params.Arguments["energy_level"])
	}
}

func TestJSONRPCResponseMarshal(t *testing.T) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      1,
		Result: CallToolResult{
			Content: []Content{NewTextContent("hello")},
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal marshaled data: %v", err)
	}

	if parsed["jsonrpc"] != "2.0" {
		t.Errorf("Expected jsonrpc to be '2.0', got '%v'", parsed["jsonrpc"])
	}

	result, ok := parsed["result"].(map[string]interface{})
	if !ok {
		t.Fatalf("Result is not a map: %T", parsed["result"])
	}
	content, ok := result["content"].([]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("Expected one content block, got %v", result["content"])
	}
	block := content[0].(map[string]interface{})
	if block["type"] != "text" || block["text"] != "hello" {
		t.Errorf("Unexpected content block: %v", block)
	}
}

func TestJSONRPCErrorMarshal(t *testing.T) {
	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      "req-1",
		Error: &JSONRPCError{
			Code:    int(MethodNotFound),
			Message: ErrorMessage(MethodNotFound),
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal error response: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal marshaled data: %v", err)
	}

	errObj, ok := parsed["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Error is not a map: %T", parsed["error"])
	}
	if errObj["code"] != float64(-32601) {
		t.Errorf("Expected code -32601, got %v", errObj["code"])
	}
	if errObj["message"] != "Method not found" {
		t.Errorf("Expected message 'Method not found', got %v", errObj["message"])
	}
	if _, hasResult := parsed["result"]; hasResult {
		t.Error("Error response should not carry a result")
	}
}

func TestMessageKinds(t *testing.T) {
	var msg JSONRPCMessage = JSONRPCRequest{}
	if !msg.IsRequest() || msg.IsResponse() || msg.IsNotification() {
		t.Error("Request misclassified")
	}

	msg = JSONRPCResponse{}
	if msg.IsRequest() || !msg.IsResponse() || msg.IsNotification() {
		t.Error("Response misclassified")
	}

	msg = JSONRPCNotification{}
	if msg.IsRequest() || msg.IsResponse() || !msg.IsNotification() {
		t.Error("Notification misclassified")
	}
}
