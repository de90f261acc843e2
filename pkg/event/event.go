// Package event defines the record shape published to the host event log.
package event

import "strings"

// Topic tags an event for external observers.
type Topic string

// TopicInit records contract initialization with the admin identity payload.
const TopicInit Topic = "init"

// IsValid reports whether the topic is usable.
func (t Topic) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Event is an ordered (topic tuple, payload tuple) pair. Once handed to the
// host log the value is owned by the host; publishers keep no reference.
type Event struct {
	Topics []Topic  `json:"topics"`
	Data   [][]byte `json:"data"`
}

// New builds an Event from a topic tuple and a payload tuple.
func New(topics []Topic, data [][]byte) Event {
	return Event{Topics: topics, Data: data}
}

// Clone returns a deep copy sharing no memory with the receiver.
func (e Event) Clone() Event {
	out := Event{
		Topics: make([]Topic, len(e.Topics)),
		Data:   make([][]byte, len(e.Data)),
	}
	copy(out.Topics, e.Topics)
	for i, d := range e.Data {
		out.Data[i] = make([]byte, len(d))
		copy(out.Data[i], d)
	}
	return out
}
