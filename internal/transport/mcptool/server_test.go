package mcptool

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mockdesk/mockdesk/internal/store"
	hubspotuc "github.com/mockdesk/mockdesk/internal/usecase/hubspot"
	searchuc "github.com/mockdesk/mockdesk/internal/usecase/search"
	zendeskuc "github.com/mockdesk/mockdesk/internal/usecase/zendesk"
)

func newTestServer() *Server {
	st := store.New()
	zd := zendeskuc.New(st)
	hs := hubspotuc.New(st)
	se := searchuc.New(st)
	return New(zap.NewNop(), zd, hs, se)
}

// callTool drives one tools/call through the JSON-RPC layer, mirroring what
// the stdio transport does per request.
func callTool(t *testing.T, s *Server, name string, args map[string]any) (text string, isError bool) {
	t.Helper()
	ctx := context.Background()

	init := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{` +
		`"protocolVersion":"2024-11-05","capabilities":{},` +
		`"clientInfo":{"name":"test","version":"0.0.0"}}}`
	if resp := s.mcp.HandleMessage(ctx, json.RawMessage(init)); resp == nil {
		t.Fatal("initialize returned no response")
	}

	call := map[string]any{
		"jsonrpc": "2.0",
		"id":      2,
		"method":  "tools/call",
		"params":  map[string]any{"name": name, "arguments": args},
	}
	raw, err := json.Marshal(call)
	if err != nil {
		t.Fatalf("marshal call: %v", err)
	}

	resp := s.mcp.HandleMessage(ctx, raw)
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	var decoded struct {
		Result struct {
			IsError bool `json:"isError"`
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode response %s: %v", data, err)
	}
	if decoded.Error != nil {
		t.Fatalf("JSON-RPC error: %s", decoded.Error.Message)
	}
	if len(decoded.Result.Content) == 0 {
		t.Fatalf("no content in response: %s", data)
	}
	return decoded.Result.Content[0].Text, decoded.Result.IsError
}

func TestToolCall_CreateAndSearchRoundTrip(t *testing.T) {
	s := newTestServer()

	text, isError := callTool(t, s, "zendesk_create_ticket", map[string]any{
		"subject":     "Payment failed at checkout",
		"description": "Card declined for order 991",
		"priority":    "urgent",
	})
	if isError {
		t.Fatalf("create returned tool error: %s", text)
	}
	var created struct {
		Ticket struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"ticket"`
	}
	if err := json.Unmarshal([]byte(text), &created); err != nil {
		t.Fatalf("decode create result: %v", err)
	}
	if created.Ticket.ID != 1 || created.Ticket.Status != "new" {
		t.Errorf("created = %+v", created.Ticket)
	}

	text, isError = callTool(t, s, "zendesk_search", map[string]any{
		"query": "priority:urgent",
	})
	if isError {
		t.Fatalf("search returned tool error: %s", text)
	}
	var envelope struct {
		Results []map[string]any `json:"results"`
		Count   int              `json:"count"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		t.Fatalf("decode search result: %v", err)
	}
	if envelope.Count != 1 || envelope.Results[0]["result_type"] != "ticket" {
		t.Errorf("search envelope = %+v", envelope)
	}
}

func TestToolCall_ParameterTypeViolation(t *testing.T) {
	s := newTestServer()

	text, isError := callTool(t, s, "zendesk_search", map[string]any{
		"query": "anything",
		"page":  "two",
	})
	if !isError {
		t.Fatal("type violation should yield a tool error")
	}
	if !strings.Contains(text, "page must be a integer, got string") {
		t.Errorf("error text = %q", text)
	}
}

func TestToolCall_CeilingMessageSurvivesTransport(t *testing.T) {
	s := newTestServer()

	text, isError := callTool(t, s, "zendesk_search", map[string]any{
		"query":    "",
		"page":     float64(11),
		"per_page": float64(100),
	})
	if !isError {
		t.Fatal("deep window should yield a tool error")
	}
	want := "422 Unprocessable Entity: Search results are limited to 1000 records. " +
		"Please refine your search query to get fewer results."
	if !strings.Contains(text, want) {
		t.Errorf("error text = %q, want the exact ceiling message", text)
	}
}

func TestToolCall_NotFoundBecomesToolError(t *testing.T) {
	s := newTestServer()

	text, isError := callTool(t, s, "zendesk_get_ticket", map[string]any{"id": float64(404)})
	if !isError {
		t.Fatal("missing ticket should yield a tool error")
	}
	if !strings.Contains(text, "not found") {
		t.Errorf("error text = %q", text)
	}
}

func TestToolCall_HubSpotLifecycle(t *testing.T) {
	s := newTestServer()

	text, isError := callTool(t, s, "hubspot_create_email", map[string]any{
		"name":    "Welcome",
		"subject": "Hello!",
	})
	if isError {
		t.Fatalf("create email error: %s", text)
	}

	text, isError = callTool(t, s, "hubspot_publish_email", map[string]any{"id": float64(1)})
	if isError {
		t.Fatalf("publish error: %s", text)
	}
	if !strings.Contains(text, `"state": "PUBLISHED"`) {
		t.Errorf("publish result = %s", text)
	}

	text, isError = callTool(t, s, "hubspot_send_single_email", map[string]any{
		"email_id": float64(1),
		"to":       "ada@example.com",
	})
	if isError {
		t.Fatalf("send error: %s", text)
	}
	if !strings.Contains(text, `"status": "PENDING"`) {
		t.Errorf("send result = %s", text)
	}
}
