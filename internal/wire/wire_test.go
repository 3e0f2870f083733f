package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffanalyze/internal/model"
)

func TestFromDiagnostics_FlatDiscriminatedUnionEncoding(t *testing.T) {
	diags := model.Diagnostics{Messages: []model.Diagnostic{{
		Code:     "E401",
		Severity: model.SeverityError,
		Message:  "malformed resolution",
		Spans: []model.LabeledSpan{
			{Role: model.SpanRole{Kind: model.RoleTarget}, Message: "here", Span: model.Span{StartLine: 1, StartColumn: 0, EndLine: 1, EndColumn: 3}},
			{Role: model.SpanRole{Kind: model.RoleSuggestion, Replacement: "640x480"}, Message: "try", Span: model.Span{StartLine: 1, StartColumn: 4, EndLine: 1, EndColumn: 11}},
		},
		Rich: &model.RichPayload{Blocks: []model.RichBlock{
			{Kind: model.RichMarkdownGfm, Markdown: "details"},
			{Kind: model.RichMermaid, Mermaid: "graph LR"},
		}},
	}}}

	resp := FromDiagnostics(diags)
	require.Len(t, resp.Messages, 1)
	msg := resp.Messages[0]
	assert.Equal(t, "Error", msg.Severity.Type)
	assert.Equal(t, "Target", msg.Spans[0].Role.Type)
	assert.Empty(t, msg.Spans[0].Role.Replacement)
	assert.Equal(t, "Suggestion", msg.Spans[1].Role.Type)
	assert.Equal(t, "640x480", msg.Spans[1].Role.Replacement)
	require.NotNil(t, msg.Rich)
	assert.Equal(t, "MarkdownGfm", msg.Rich.Blocks[0].Type)
	assert.Equal(t, "Mermaid", msg.Rich.Blocks[1].Type)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var roundTrip map[string]any
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	messages := roundTrip["messages"].([]any)
	first := messages[0].(map[string]any)
	severity := first["severity"].(map[string]any)
	assert.Equal(t, "Error", severity["type"])
}

func TestFromDiagnostics_NoRichPayloadOmitted(t *testing.T) {
	diags := model.Diagnostics{Messages: []model.Diagnostic{{
		Code: "W101", Severity: model.SeverityWarning, Message: "high bitrate",
		Spans: []model.LabeledSpan{{Role: model.SpanRole{Kind: model.RoleTarget}, Span: model.Span{StartLine: 1, EndLine: 1, EndColumn: 2}}},
	}}}
	resp := FromDiagnostics(diags)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"rich"`)
}
