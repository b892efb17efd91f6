// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widget

// Message is one opaque payload addressed to a widget identity.
type Message struct {
	To      ID
	Message any
}

// MessageSink collects messages emitted during one pass. The engine
// drains it after the walk and merges the entries into the long-lived
// per-identity message queues.
type MessageSink struct {
	entries []Message
}

// Send queues a message.
func (s *MessageSink) Send(to ID, message any) {
	s.entries = append(s.entries, Message{To: to, Message: message})
}

// Drain returns and clears the queued messages.
func (s *MessageSink) Drain() []Message {
	e := s.entries
	s.entries = nil
	return e
}

// Messenger is the message-send capability handed to widget
// callbacks: it addresses opaque payloads to other widgets by [ID].
// Delivery happens on the next pass, when the target identity's
// processor drains its queue.
type Messenger struct {
	sink *MessageSink
}

// NewMessenger returns a [Messenger] over the given sink.
func NewMessenger(sink *MessageSink) Messenger {
	return Messenger{sink: sink}
}

// Send addresses a message to the widget with the given identity.
func (m Messenger) Send(to ID, message any) {
	if m.sink != nil {
		m.sink.Send(to, message)
	}
}

// Signal is one opaque payload raised by a widget toward the external
// driver.
type Signal struct {
	Sender  ID
	Message any
}

// SignalSink collects signals emitted during one pass. The engine
// replaces the published signal list with the sink's contents after
// the walk.
type SignalSink struct {
	entries []Signal
}

// Raise queues a signal.
func (s *SignalSink) Raise(sender ID, message any) {
	s.entries = append(s.entries, Signal{Sender: sender, Message: message})
}

// Drain returns and clears the queued signals.
func (s *SignalSink) Drain() []Signal {
	e := s.entries
	s.entries = nil
	return e
}

// SignalSender is the signal-raise capability handed to widget
// callbacks, pre-bound to the owning widget's identity.
type SignalSender struct {
	id   ID
	sink *SignalSink
}

// NewSignalSender returns a [SignalSender] bound to the given
// identity.
func NewSignalSender(id ID, sink *SignalSink) SignalSender {
	return SignalSender{id: id, sink: sink}
}

// Raise emits a signal from the bound widget toward the driver.
func (s SignalSender) Raise(message any) {
	if s.sink != nil {
		s.sink.Raise(s.id, message)
	}
}
