package agent

import (
	"context"
	"log"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the agent uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OrderAgent drives one phone call: it keeps the per-call Memory, asks
// the LLM for the next turn and executes any tool call it emits.
// Not safe for concurrent use; the transport serializes turns per call.
type OrderAgent struct {
	client  ChatCompleter
	model   string
	memory  *Memory
	handler *ToolHandler
	convID  string
}

func NewOrderAgent(client ChatCompleter, model string, catalog Catalog, customers CustomerStore, orders OrderStore) *OrderAgent {
	convID := uuid.NewString()
	memory := NewMemory()
	return &OrderAgent{
		client:  client,
		model:   model,
		memory:  memory,
		handler: NewToolHandler(catalog, customers, orders, memory, convID),
		convID:  convID,
	}
}

func (a *OrderAgent) ConvID() string { return a.convID }

func (a *OrderAgent) Memory() *Memory { return a.memory }

// SetFromNumber records the caller id so verify_customer and
// create_order can fall back to it when the LLM omits the phone.
func (a *OrderAgent) SetFromNumber(phone string) {
	a.handler.SetFromNumber(phone)
}

// BeginMessage opens the call before any user speech.
func (a *OrderAgent) BeginMessage(responseID int) Response {
	return NewResponse(responseID, BeginSentence, false)
}

// DraftResponse produces the reply for one turn. On LLM failure the
// call stays alive with a retry prompt.
func (a *OrderAgent) DraftResponse(ctx context.Context, req Request) Response {
	a.ingestTranscript(req.Transcript)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
	}
	messages = append(messages, a.memory.History()...)
	if req.InteractionType == InteractionReminderRequired {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser, Content: ReminderNudge,
		})
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
		Tools:    Tools(a.memory.ItemConfirmed),
	})
	if err != nil {
		log.Printf("conv=%s chat completion failed: %v", a.convID, err)
		return NewResponse(req.ResponseID, "I'm having trouble processing that right now. Could you say that again?", false)
	}
	if len(resp.Choices) == 0 {
		log.Printf("conv=%s chat completion returned no choices", a.convID)
		return NewResponse(req.ResponseID, "I'm having trouble processing that right now. Could you say that again?", false)
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		tc := msg.ToolCalls[0]
		a.memory.AddToolCallMessage(msg.Content, msg.ToolCalls)
		return a.handler.Handle(ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: []byte(tc.Function.Arguments),
		}, req.ResponseID)
	}

	a.memory.AddMessage(openai.ChatMessageRoleAssistant, msg.Content)
	return NewResponse(req.ResponseID, msg.Content, false)
}

// ingestTranscript folds the new tail of the transport transcript into
// memory. The transport resends the whole transcript every turn, so
// only entries past TranscriptSeen are new.
func (a *OrderAgent) ingestTranscript(transcript []Utterance) {
	for i := a.memory.TranscriptSeen; i < len(transcript); i++ {
		u := transcript[i]
		role := openai.ChatMessageRoleUser
		if u.Role == "agent" {
			role = openai.ChatMessageRoleAssistant
		}
		a.memory.AddMessage(role, u.Content)
	}
	if len(transcript) > a.memory.TranscriptSeen {
		a.memory.TranscriptSeen = len(transcript)
	}
}
