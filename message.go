/* Go IPP - IPP core protocol codec in pure Go
 *
 * IPP protocol messages
 */

package ipp

import (
	"bytes"
	"fmt"
)

// Code is the 16-bit field that carries an Op on a request and a
// Status on a response.
type Code int16

// Version is the two-octet protocol version, major then minor.
type Version struct {
	Major uint8
	Minor uint8
}

// DefaultVersion is IPP 1.1, the version this package assumes when a
// caller doesn't specify one.
var DefaultVersion = Version{Major: 1, Minor: 1}

// String renders the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Message is a single IPP request or response. Code is the Op on a
// request and the Status on a response; nothing in this type tracks
// which, since the wire format doesn't either (RFC 2910 gives the two
// codes disjoint numeric ranges by convention, not by framing).
type Message struct {
	Version   Version
	Code      Code
	RequestID int32

	Operation   Attributes
	Job         Attributes
	Printer     Attributes
	Unsupported Attributes

	// Data is the opaque document body trailing the end-of-attributes
	// marker, e.g. the bytes of a print job.
	Data []byte
}

// NewRequest builds a request Message with the given operation and
// request ID.
func NewRequest(version Version, op Op, requestID int32) *Message {
	return &Message{Version: version, Code: Code(op), RequestID: requestID}
}

// NewResponse builds a response Message with the given status and
// request ID.
func NewResponse(version Version, status Status, requestID int32) *Message {
	return &Message{Version: version, Code: Code(status), RequestID: requestID}
}

// groupBucket returns a pointer to the Attributes slice backing tag,
// or nil if tag isn't one of the four groups this package models.
func (m *Message) groupBucket(tag Tag) *Attributes {
	switch tag {
	case TagOperationGroup:
		return &m.Operation
	case TagJobGroup:
		return &m.Job
	case TagPrinterGroup:
		return &m.Printer
	case TagUnsupportedGroup:
		return &m.Unsupported
	}
	return nil
}

// Groups returns the message's non-empty attribute groups in the
// canonical wire order (operation, job, printer, unsupported). Empty
// groups are omitted, matching how the encoder decides which group
// tags to emit.
func (m *Message) Groups() []Group {
	out := make([]Group, 0, len(groupOrder))
	for _, tag := range groupOrder {
		if attrs := *m.groupBucket(tag); len(attrs) > 0 {
			out = append(out, Group{tag, attrs})
		}
	}
	return out
}

// OperationName reverse-looks-up Code as an Op and returns its RFC
// 2911 symbolic name. ok is false when Code has no entry in the
// operation table — in particular, status codes (a response's Code)
// are never operation names, so calling OperationName on a response
// Message correctly reports ok=false unless the status code happens
// to collide with an operation code's numeric range.
func (m *Message) OperationName() (name string, ok bool) {
	s, present := opNames[Op(m.Code)]
	return s, present
}

// StatusName reverse-looks-up Code as a Status and returns its RFC
// 2911 symbolic name, with the same ok semantics as OperationName.
func (m *Message) StatusName() (name string, ok bool) {
	s, present := statusNames[Status(m.Code)]
	return s, present
}

// DeriveResponse builds a response Message from a request: same
// Version and RequestID, the given status code (StatusOk if none is
// given), and attributes-charset/attributes-natural-language
// pre-populated in the operation group, the way every IPP response
// must begin.
func (m *Message) DeriveResponse(status ...Status) *Message {
	code := StatusOk
	if len(status) > 0 {
		code = status[0]
	}

	resp := NewResponse(m.Version, code, m.RequestID)
	resp.Operation.Add(MakeAttribute("attributes-charset", TagCharset, String("utf-8")))
	resp.Operation.Add(MakeAttribute("attributes-natural-language", TagNaturalLanguage, String("en-us")))
	return resp
}

// Equal reports whether m and m2 have the same version, code, request
// ID, attribute groups and trailing data. Attribute order within each
// group matters, matching the wire-format equality spec.md's testable
// properties require.
func (m *Message) Equal(m2 *Message) bool {
	if m.Version != m2.Version || m.Code != m2.Code || m.RequestID != m2.RequestID {
		return false
	}
	if !attrsEqual(m.Operation, m2.Operation) ||
		!attrsEqual(m.Job, m2.Job) ||
		!attrsEqual(m.Printer, m2.Printer) ||
		!attrsEqual(m.Unsupported, m2.Unsupported) {
		return false
	}
	return bytes.Equal(m.Data, m2.Data)
}

func attrsEqual(a, b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || len(a[i].Values) != len(b[i].Values) {
			return false
		}
		for j := range a[i].Values {
			v1, v2 := a[i].Values[j], b[i].Values[j]
			if v1.Tag != v2.Tag || v1.Value.String() != v2.Value.String() {
				return false
			}
		}
	}
	return true
}

// String pretty-prints the message using Dump.
func (m *Message) String() string {
	var buf bytes.Buffer
	m.Dump(&buf, true)
	return buf.String()
}
