package channel

import "mediabridge/internal/logging"

// ReplyKind tells which Result method answered a call.
type ReplyKind int

const (
	ReplyNone ReplyKind = iota
	ReplySuccess
	ReplyError
	ReplyNotImplemented
)

// Reply is the captured answer to a call.
type Reply struct {
	Kind    ReplyKind
	Value   interface{}
	Code    string
	Message string
	Details interface{}
}

// Recorder is a Result that keeps the first reply it receives. Transports
// use it to turn a reply into their own wire format.
type Recorder struct {
	Reply Reply
}

var _ Result = (*Recorder)(nil)

// Replied reports whether an answer was recorded.
func (r *Recorder) Replied() bool {
	return r.Reply.Kind != ReplyNone
}

func (r *Recorder) Success(value interface{}) {
	if r.alreadyReplied() {
		return
	}
	r.Reply = Reply{Kind: ReplySuccess, Value: value}
}

func (r *Recorder) Error(code string, message string, details interface{}) {
	if r.alreadyReplied() {
		return
	}
	r.Reply = Reply{Kind: ReplyError, Code: code, Message: message, Details: details}
}

func (r *Recorder) NotImplemented() {
	if r.alreadyReplied() {
		return
	}
	r.Reply = Reply{Kind: ReplyNotImplemented}
}

func (r *Recorder) alreadyReplied() bool {
	if r.Replied() {
		logging.Log.Warn("Channel: reply already submitted, ignoring")
		return true
	}
	return false
}
