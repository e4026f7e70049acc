package agent

// Interaction types the transport sends on the call socket.
const (
	InteractionCallDetails      = "call_details"
	InteractionPingPong         = "ping_pong"
	InteractionUpdateOnly       = "update_only"
	InteractionResponseRequired = "response_required"
	InteractionReminderRequired = "reminder_required"
)

// Utterance is one turn of the call transcript as the transport sends it.
type Utterance struct {
	Role    string `json:"role"` // "agent" or "user"
	Content string `json:"content"`
}

// Request is a turn the transport wants a response for.
type Request struct {
	InteractionType string      `json:"interaction_type"` // response_required or reminder_required
	ResponseID      int         `json:"response_id"`
	Transcript      []Utterance `json:"transcript"`
}

// Response is the per-turn reply sent back over the call socket.
// EndCall is only ever set by the explicit end-call path.
type Response struct {
	ResponseType    string `json:"response_type"`
	ResponseID      int    `json:"response_id"`
	Content         string `json:"content"`
	ContentComplete bool   `json:"content_complete"`
	EndCall         bool   `json:"end_call"`
}

func NewResponse(responseID int, content string, endCall bool) Response {
	return Response{
		ResponseType:    "response",
		ResponseID:      responseID,
		Content:         content,
		ContentComplete: true,
		EndCall:         endCall,
	}
}
