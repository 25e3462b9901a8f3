// Package chat holds the conversation state and the session orchestration
// around a single advisor chat exchange.
package chat

import "knowli_cli/api"

// Conversation is the ordered, append-only list of exchanged messages.
// Reset replaces the sequence wholesale with the configured initial state.
// Conversation is not safe for concurrent use; Session serializes access.
type Conversation struct {
	initial  []api.Message
	messages []api.Message
}

// NewConversation creates a conversation whose Reset restores the given
// initial messages (nil or empty for a blank conversation).
func NewConversation(initial []api.Message) *Conversation {
	c := &Conversation{initial: append([]api.Message(nil), initial...)}
	c.Reset()
	return c
}

// Append adds a message at the end of the conversation.
func (c *Conversation) Append(msg api.Message) {
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of the conversation in order.
func (c *Conversation) Messages() []api.Message {
	return append([]api.Message(nil), c.messages...)
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Reset replaces the conversation with its configured initial state.
func (c *Conversation) Reset() {
	c.messages = append([]api.Message(nil), c.initial...)
}
