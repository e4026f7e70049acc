package ws

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ujjwal-9/ordering-agent/agent"
)

const turnTimeout = 30 * time.Second

// AgentFactory builds a fresh OrderAgent per call; agents are never
// shared between connections.
type AgentFactory func() *agent.OrderAgent

// CallServer speaks the voice transport's custom-LLM websocket
// protocol: config on connect, then one response per response_required
// or reminder_required event.
type CallServer struct {
	factory  AgentFactory
	upgrader websocket.Upgrader
}

func NewCallServer(factory AgentFactory) *CallServer {
	return &CallServer{
		factory: factory,
		upgrader: websocket.Upgrader{
			// The transport connects server-to-server.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

type inboundEvent struct {
	InteractionType string            `json:"interaction_type"`
	ResponseID      int               `json:"response_id"`
	Transcript      []agent.Utterance `json:"transcript"`
	Call            *callDetails      `json:"call"`
	Timestamp       int64             `json:"timestamp"`
}

type callDetails struct {
	FromNumber string `json:"from_number"`
}

type configEvent struct {
	ResponseType string     `json:"response_type"`
	Config       callConfig `json:"config"`
}

type callConfig struct {
	AutoReconnect bool `json:"auto_reconnect"`
	CallDetails   bool `json:"call_details"`
}

type pingEvent struct {
	ResponseType string `json:"response_type"`
	Timestamp    int64  `json:"timestamp"`
}

// session serializes writes on one call connection and tracks the
// newest response_id so stale replies are dropped instead of spoken.
type session struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	turnMu  sync.Mutex
	latest  atomic.Int64
	agent   *agent.OrderAgent
	callID  string
}

func (s *session) write(v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// HandleCall is the gin handler for GET /ws/call/:call_id.
func (srv *CallServer) HandleCall(c *gin.Context) {
	conn, err := srv.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s := &session{
		conn:   conn,
		agent:  srv.factory(),
		callID: c.Param("call_id"),
	}
	log.Printf("call=%s conv=%s connected", s.callID, s.agent.ConvID())

	if err := s.write(configEvent{
		ResponseType: "config",
		Config:       callConfig{AutoReconnect: true, CallDetails: true},
	}); err != nil {
		log.Printf("call=%s config write failed: %v", s.callID, err)
		return
	}

	srv.readLoop(s)
	log.Printf("call=%s disconnected", s.callID)
}

func (srv *CallServer) readLoop(s *session) {
	for {
		var ev inboundEvent
		if err := s.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("call=%s read failed: %v", s.callID, err)
			}
			return
		}

		switch ev.InteractionType {
		case agent.InteractionCallDetails:
			if ev.Call != nil {
				s.agent.SetFromNumber(ev.Call.FromNumber)
			}
			// The greeting goes out once call metadata has arrived.
			if err := s.write(s.agent.BeginMessage(0)); err != nil {
				return
			}

		case agent.InteractionPingPong:
			if err := s.write(pingEvent{ResponseType: "ping_pong", Timestamp: ev.Timestamp}); err != nil {
				return
			}

		case agent.InteractionUpdateOnly:
			// Transcript sync only; nothing to answer.

		case agent.InteractionResponseRequired, agent.InteractionReminderRequired:
			s.latest.Store(int64(ev.ResponseID))
			go srv.respond(s, ev)

		default:
			log.Printf("call=%s unknown interaction type %q", s.callID, ev.InteractionType)
		}
	}
}

// respond runs one turn. Turns are serialized per call because the
// agent mutates its memory; a newer response_id may still arrive while
// the LLM is thinking, in which case the reply is dropped unspoken.
func (srv *CallServer) respond(s *session, ev inboundEvent) {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	if int64(ev.ResponseID) < s.latest.Load() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	resp := s.agent.DraftResponse(ctx, agent.Request{
		InteractionType: ev.InteractionType,
		ResponseID:      ev.ResponseID,
		Transcript:      ev.Transcript,
	})

	if int64(ev.ResponseID) < s.latest.Load() {
		log.Printf("call=%s dropping stale response %d", s.callID, ev.ResponseID)
		return
	}
	if err := s.write(resp); err != nil {
		log.Printf("call=%s response write failed: %v", s.callID, err)
	}
}
