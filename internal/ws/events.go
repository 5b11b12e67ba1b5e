package ws

import "time"

// Event names pushed to subscribers.
const (
	EventStatus        = "status"
	EventTyping        = "user_typing"
	EventStopTyping    = "user_stop_typing"
	EventNewMessage    = "new_message"
	EventCallIncoming  = "call_incoming"
	EventCallConnected = "call_connected"
	EventCallEnded     = "call_ended"
	EventGroupMessage  = "group_message"
)

// Command names accepted from subscribers.
const (
	cmdJoin        = "join"
	cmdLeave       = "leave"
	cmdTyping      = "typing"
	cmdStopTyping  = "stop_typing"
	cmdSendMessage = "send_message"
	cmdJoinGroup   = "join_group"
	cmdLeaveGroup  = "leave_group"
)

// Envelope wraps every pushed event.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Command is a subscriber-originated frame. Fields are a union across
// all commands; each handler reads the ones it needs.
type Command struct {
	Event     string `json:"event"`
	Username  string `json:"username,omitempty"`
	Room      string `json:"room,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Content   string `json:"content,omitempty"`
}

type StatusEvent struct {
	Msg string `json:"msg"`
}

type TypingEvent struct {
	Username string `json:"username"`
}

// NewMessageEvent carries plaintext captured before encryption; the
// stored record holds only ciphertext.
type NewMessageEvent struct {
	From      string    `json:"from"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type CallIncomingEvent struct {
	CallID string `json:"call_id"`
	Caller string `json:"caller"`
}

type CallEvent struct {
	CallID string `json:"call_id"`
}

type GroupMessageEvent struct {
	Group   string `json:"group"`
	From    string `json:"from"`
	Content string `json:"content"`
}
