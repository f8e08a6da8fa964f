package fetch

import (
	"github.com/arthur-debert/loadfile/pkg/errors"
)

// decodeBody copies a response body into an owned byte slice. Host values
// that are neither []byte nor ByteArray are reported as an unknown
// encoding; a host that panics while copying is reported as a decode
// failure.
func decodeBody(v any) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = errors.Newf(errors.ErrResponseDecode, "failed to cast file into bytes: %v", r)
		}
	}()

	switch body := v.(type) {
	case nil:
		return nil, errors.New(errors.ErrResponseDecode, "failed to get HTTP response: no response body")
	case []byte:
		out = make([]byte, len(body))
		copy(out, body)
		return out, nil
	case ByteArray:
		n := body.Len()
		if n < 0 {
			return nil, errors.Newf(errors.ErrResponseDecode, "failed to cast file into bytes: invalid length %d", n)
		}
		out = make([]byte, n)
		if copied := body.CopyTo(out); copied != n {
			return nil, errors.Newf(errors.ErrResponseDecode, "failed to cast file into bytes: copied %d of %d", copied, n).
				WithDetail("expected", n).
				WithDetail("copied", copied)
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrUnknownEncoding, "unknown file encoding type: %T", v)
	}
}
