package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnreachable marks transport failures: refused connections, DNS
// errors, timeouts. The wrapped cause is kept for logs only.
var ErrUnreachable = errors.New("backend unreachable")

// DetailKind tags which shape the API's "detail" field had.
type DetailKind int

const (
	DetailUnknown DetailKind = iota
	DetailString
	DetailValidation
)

// Violation is one entry of a validation error list.
type Violation struct {
	Msg  string            `json:"msg"`
	Type string            `json:"type,omitempty"`
	Loc  []json.RawMessage `json:"loc,omitempty"`
}

// Detail is the decoded "detail" field of an error body.
type Detail struct {
	Kind       DetailKind
	Message    string
	Violations []Violation
	// Raw is the undecoded detail value, nil when the body had none.
	Raw json.RawMessage
}

// Messages returns the validation messages in order.
func (d Detail) Messages() []string {
	out := make([]string, 0, len(d.Violations))
	for _, v := range d.Violations {
		out = append(out, v.Msg)
	}
	return out
}

// Text renders the detail for display: the string itself or the
// validation messages joined with ", ". Unknown shapes render empty.
func (d Detail) Text() string {
	switch d.Kind {
	case DetailString:
		return d.Message
	case DetailValidation:
		return strings.Join(d.Messages(), ", ")
	default:
		return ""
	}
}

// Verbatim renders the detail without interpreting its shape: strings as
// is, anything else as its JSON text.
func (d Detail) Verbatim() string {
	if d.Kind == DetailString {
		return d.Message
	}
	return string(d.Raw)
}

// DecodeDetail extracts the "detail" field from an error body.
func DecodeDetail(body []byte) Detail {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Detail{Kind: DetailUnknown}
	}
	raw := bytes.TrimSpace(envelope.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Detail{Kind: DetailUnknown}
	}
	detail := Detail{Kind: DetailUnknown, Raw: raw}
	switch raw[0] {
	case '"':
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			detail.Kind = DetailString
			detail.Message = msg
		}
	case '[':
		var list []Violation
		if err := json.Unmarshal(raw, &list); err == nil {
			detail.Kind = DetailValidation
			detail.Violations = list
		}
	}
	return detail
}

// ResponseError is returned when the API answers with a non-2xx status.
type ResponseError struct {
	StatusCode int
	Status     string
	Detail     Detail
}

func (e *ResponseError) Error() string {
	if text := e.Detail.Text(); text != "" {
		return fmt.Sprintf("api error: %s (%s)", e.Status, text)
	}
	return fmt.Sprintf("api error: %s", e.Status)
}
