package fetch

import "fmt"

// ReadyState is the lifecycle stage reported by a request object.
type ReadyState int

const (
	Unsent ReadyState = iota
	Opened
	HeadersReceived
	Loading
	Done
)

func (s ReadyState) String() string {
	switch s {
	case Unsent:
		return "unsent"
	case Opened:
		return "opened"
	case HeadersReceived:
		return "headers-received"
	case Loading:
		return "loading"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("ready-state(%d)", int(s))
	}
}

// ResponseType names the body representation requested from the host.
type ResponseType string

// ResponseTypeArrayBuffer asks for the body as raw binary.
const ResponseTypeArrayBuffer ResponseType = "arraybuffer"

// Request is the host-provided HTTP request object. It is single-shot:
// opened once, sent once, then observed through Status and ReadyState until
// it is Done.
type Request interface {
	Open(method, url string) error
	SetResponseType(t ResponseType) error
	Send() error
	// Status is 0 until the status line has been received.
	Status() (int, error)
	ReadyState() ReadyState
	// Response returns the body once the request is Done. A host may return
	// a []byte, a ByteArray, or nil when there is no body.
	Response() (any, error)
}

// Notifier is implemented by requests that can report completion. fn is
// invoked once when the request loads or errors, possibly from another
// goroutine or a host callback, and must not block.
type Notifier interface {
	OnSettled(fn func())
}

// ByteArray is a host-owned binary buffer, such as a JavaScript typed
// array, that can be copied into Go memory.
type ByteArray interface {
	Len() int
	// CopyTo copies the buffer into dst and returns the number of bytes
	// copied.
	CopyTo(dst []byte) int
}

// Factory constructs a fresh request object.
type Factory func() (Request, error)
