package agent

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply    openai.ChatCompletionMessage
	err      error
	requests []openai.ChatCompletionRequest
}

func (f *fakeLLM) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: f.reply}},
	}, nil
}

func newTestAgent(llm *fakeLLM) *OrderAgent {
	return NewOrderAgent(llm, "gpt-4o", newFakeCatalog(), newFakeCustomers(), newFakeOrders())
}

func TestBeginMessage(t *testing.T) {
	a := newTestAgent(&fakeLLM{})
	resp := a.BeginMessage(0)
	assert.Equal(t, 0, resp.ResponseID)
	assert.Equal(t, BeginSentence, resp.Content)
	assert.False(t, resp.EndCall)
}

func TestDraftResponsePlainReply(t *testing.T) {
	llm := &fakeLLM{reply: openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleAssistant, Content: "What would you like to order?",
	}}
	a := newTestAgent(llm)

	resp := a.DraftResponse(context.Background(), Request{
		InteractionType: InteractionResponseRequired,
		ResponseID:      3,
		Transcript: []Utterance{
			{Role: "agent", Content: BeginSentence},
			{Role: "user", Content: "Hi, I'm Sam"},
		},
	})

	assert.Equal(t, 3, resp.ResponseID)
	assert.Equal(t, "What would you like to order?", resp.Content)

	// System prompt plus both transcript turns.
	require.Len(t, llm.requests, 1)
	msgs := llm.requests[0].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, "Hi, I'm Sam", msgs[2].Content)
}

func TestDraftResponseIngestsOnlyNewTranscript(t *testing.T) {
	llm := &fakeLLM{reply: openai.ChatCompletionMessage{Content: "ok"}}
	a := newTestAgent(llm)

	first := []Utterance{{Role: "user", Content: "hello"}}
	a.DraftResponse(context.Background(), Request{ResponseID: 1, Transcript: first})
	second := append(first, Utterance{Role: "agent", Content: "ok"}, Utterance{Role: "user", Content: "menu please"})
	a.DraftResponse(context.Background(), Request{ResponseID: 2, Transcript: second})

	// No duplicated turns: system + hello + ok(from memory) + ok + menu.
	msgs := llm.requests[1].Messages
	var hellos int
	for _, m := range msgs {
		if m.Content == "hello" {
			hellos++
		}
	}
	assert.Equal(t, 1, hellos)
}

func TestDraftResponseReminderNudge(t *testing.T) {
	llm := &fakeLLM{reply: openai.ChatCompletionMessage{Content: "Are you still there?"}}
	a := newTestAgent(llm)

	a.DraftResponse(context.Background(), Request{
		InteractionType: InteractionReminderRequired,
		ResponseID:      5,
	})

	msgs := llm.requests[0].Messages
	require.NotEmpty(t, msgs)
	last := msgs[len(msgs)-1]
	assert.Equal(t, openai.ChatMessageRoleUser, last.Role)
	assert.Equal(t, ReminderNudge, last.Content)
}

func TestDraftResponseDispatchesToolCall(t *testing.T) {
	llm := &fakeLLM{reply: openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleAssistant,
		ToolCalls: []openai.ToolCall{{
			ID:   "tc-9",
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      ToolVerifyOrderItem,
				Arguments: `{"item_name":"margherita pizza","category":"pizza","add_ons":[]}`,
			},
		}},
	}}
	a := newTestAgent(llm)

	resp := a.DraftResponse(context.Background(), Request{
		ResponseID: 4,
		Transcript: []Utterance{{Role: "user", Content: "a margherita please"}},
	})

	assert.Equal(t, 4, resp.ResponseID)
	assert.Contains(t, resp.Content, "added the Margherita Pizza")
	assert.True(t, a.Memory().ItemConfirmed)
}

func TestDraftResponseToolFilterAfterConfirmation(t *testing.T) {
	llm := &fakeLLM{reply: openai.ChatCompletionMessage{Content: "ok"}}
	a := newTestAgent(llm)
	a.Memory().ItemConfirmed = true

	a.DraftResponse(context.Background(), Request{ResponseID: 1})

	require.Len(t, llm.requests, 1)
	for _, tool := range llm.requests[0].Tools {
		assert.NotEqual(t, ToolVerifyOrderItem, tool.Function.Name)
	}
}

func TestDraftResponseLLMErrorKeepsCallAlive(t *testing.T) {
	llm := &fakeLLM{err: assert.AnError}
	a := newTestAgent(llm)

	resp := a.DraftResponse(context.Background(), Request{ResponseID: 2})

	assert.Equal(t, 2, resp.ResponseID)
	assert.False(t, resp.EndCall)
	assert.Contains(t, resp.Content, "trouble")
}
