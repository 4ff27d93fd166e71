// Package channel is the method-call boundary through which callers reach
// the deletion coordinator. A call names a method and carries a map of
// arguments; the handler answers through a Result exactly once.
package channel

// Method names understood by the handler.
const (
	MethodDeleteFile = "deleteFile"
)

// Error codes sent back through Result.Error.
const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

// MethodCall is a single invocation received from the caller.
type MethodCall struct {
	Method    string                 `json:"method"`
	Arguments map[string]interface{} `json:"arguments"`
}

// StringArgument returns the named argument if it is present and a string.
func (c MethodCall) StringArgument(key string) (string, bool) {
	if c.Arguments == nil {
		return "", false
	}
	v, ok := c.Arguments[key].(string)
	return v, ok
}

// Result receives the answer to a MethodCall.
type Result interface {
	Success(value interface{})
	Error(code string, message string, details interface{})
	NotImplemented()
}
