package agent

import (
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one entry of the conversation transcript, including tool
// calls and tool results for debugging.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []openai.ToolCall
	ToolCallID string
	Timestamp  time.Time
}

// Memory is the per-call conversation state threaded through every tool
// handler. Created at call start, discarded at call end; nothing
// persists across calls.
type Memory struct {
	Messages []Message

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	VerifiedCustomer bool
	ItemConfirmed    bool
	CurrentItem      *VerifyOrderItemArgs
	Flow             *AddOnFlow

	// OrderID is set once create_order succeeds; a later create_order
	// in the same call updates this order instead of inserting again.
	OrderID uint

	ToolChain       []string
	LastInteraction time.Time

	// TranscriptSeen counts the transport transcript entries already
	// folded into Messages, so each turn only ingests the new tail.
	TranscriptSeen int
}

func NewMemory() *Memory {
	return &Memory{LastInteraction: time.Now()}
}

func (m *Memory) AddMessage(role, content string) {
	m.Messages = append(m.Messages, Message{Role: role, Content: content, Timestamp: time.Now()})
	m.LastInteraction = time.Now()
}

func (m *Memory) AddToolCallMessage(content string, calls []openai.ToolCall) {
	m.Messages = append(m.Messages, Message{
		Role: openai.ChatMessageRoleAssistant, Content: content,
		ToolCalls: calls, Timestamp: time.Now(),
	})
	m.LastInteraction = time.Now()
}

func (m *Memory) AddToolResult(toolCallID, content string) {
	m.Messages = append(m.Messages, Message{
		Role: openai.ChatMessageRoleTool, Content: content,
		ToolCallID: toolCallID, Timestamp: time.Now(),
	})
	m.LastInteraction = time.Now()
}

// History renders the transcript for the next LLM call. Tool-call
// bookkeeping is flattened: assistant messages that only carried a tool
// call are skipped and tool results are replayed as plain assistant
// turns, so the model sees a clean two-party conversation.
func (m *Memory) History() []openai.ChatCompletionMessage {
	var out []openai.ChatCompletionMessage
	for _, msg := range m.Messages {
		if len(msg.ToolCalls) > 0 {
			continue
		}
		role := msg.Role
		if msg.ToolCallID != "" {
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	return out
}

func (m *Memory) UpdateCustomer(name, phone string) {
	if name != "" {
		m.CustomerName = name
	}
	if phone != "" {
		m.CustomerPhone = phone
	}
}
