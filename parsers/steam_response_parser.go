package parsers

import (
	"github.com/tidwall/gjson"
)

// Steam reports failures in several loosely-typed shapes depending on the
// endpoint family:
//
//	{"response": {"success": 8}}           Web API services
//	{"success": false, "error": "..."}     community endpoints
//	{"eresult": 25, "message": "..."}      some mobile/twofactor endpoints
//
// These helpers probe the known locations with gjson instead of declaring
// a struct per shape, and follow the (value, ok) convention: ok is false
// when the body carries no recognizable field.

// EResultFromBytes extracts a Steam EResult code from a response body.
func EResultFromBytes(data []byte) (int, bool) {
	for _, path := range []string{"eresult", "response.success", "success"} {
		v := gjson.GetBytes(data, path)
		if v.Type == gjson.Number {
			return int(v.Int()), true
		}
	}
	return 0, false
}

// ErrorMessageFromBytes extracts a human-readable error string
// from a response body.
func ErrorMessageFromBytes(data []byte) (string, bool) {
	for _, path := range []string{"error", "message", "response.error"} {
		v := gjson.GetBytes(data, path)
		if v.Type == gjson.String && v.Str != "" {
			return v.Str, true
		}
	}
	return "", false
}

// SucceededFromBytes reports whether the body declares success:
// either a boolean "success" field, or an EResult of 1 (OK).
func SucceededFromBytes(data []byte) (bool, bool) {
	v := gjson.GetBytes(data, "success")
	switch v.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	}
	if code, ok := EResultFromBytes(data); ok {
		return code == 1, true
	}
	return false, false
}
