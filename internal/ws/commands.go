package ws

import (
	"encoding/json"
	"log/slog"
)

// handleCommand dispatches one subscriber frame. Malformed or unknown
// frames are logged and dropped; they never tear down the connection.
func (c *Client) handleCommand(raw []byte) {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		slog.Warn("invalid frame", "conn", c.id, "err", err)
		return
	}

	h := c.hub
	switch cmd.Event {
	case cmdJoin:
		if cmd.Username == "" {
			return
		}
		h.Join(c, cmd.Username)
		h.notify(c, EventStatus, StatusEvent{Msg: cmd.Username + " has entered the room."})

	case cmdLeave:
		h.Leave(c, cmd.Username)
		h.notify(c, EventStatus, StatusEvent{Msg: cmd.Username + " has left the room."})

	case cmdTyping:
		h.PublishExcept(c.typingRoom(cmd), c, EventTyping, TypingEvent{Username: cmd.Username})

	case cmdStopTyping:
		h.PublishExcept(c.typingRoom(cmd), c, EventStopTyping, TypingEvent{Username: cmd.Username})

	case cmdSendMessage:
		// Same path as the HTTP send: mutate first, publish after.
		ts, err := h.messages.Send(cmd.From, cmd.To, cmd.Content)
		if err != nil {
			slog.Warn("realtime send rejected", "conn", c.id, "from", cmd.From, "to", cmd.To, "err", err)
			return
		}
		h.Publish(cmd.To, EventNewMessage, NewMessageEvent{From: cmd.From, Content: cmd.Content, Timestamp: ts})

	case cmdJoinGroup:
		// Group rooms are gated on current membership.
		if !h.groups.IsMember(cmd.GroupName, cmd.Username) {
			return
		}
		h.Join(c, cmd.GroupName)
		h.Publish(cmd.GroupName, EventStatus, StatusEvent{Msg: cmd.Username + " joined group " + cmd.GroupName})

	case cmdLeaveGroup:
		h.Leave(c, cmd.GroupName)
		h.Publish(cmd.GroupName, EventStatus, StatusEvent{Msg: cmd.Username + " left group " + cmd.GroupName})

	default:
		slog.Warn("unknown command", "conn", c.id, "event", cmd.Event)
	}
}

// typingRoom is the explicit room when given, else the sender's own
// inbox room.
func (c *Client) typingRoom(cmd Command) string {
	if cmd.Room != "" {
		return cmd.Room
	}
	return cmd.Username
}
