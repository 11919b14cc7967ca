/* Go IPP - IPP core protocol codec in pure Go
 *
 * IPP Message encoder
 */

package ipp

import (
	"bytes"
	"encoding/binary"
)

// Encode serializes the message into RFC 2910 wire format. Groups are
// emitted in the canonical order (operation, job, printer,
// unsupported), empty groups are skipped, attributes keep their
// insertion order, and a multi-valued attribute becomes one named
// record plus zero-name continuation records.
//
// Encode fails, leaving the message untouched, if the version major is
// zero or the request ID is zero — both are reserved on the wire and a
// message carrying them would be rejected by any conforming peer.
func (m *Message) Encode() ([]byte, error) {
	if m.Version.Major == 0 {
		return nil, newErrNoOffset(Malformed,
			"version major must be in 1..255, got %d", m.Version.Major)
	}
	if m.RequestID == 0 {
		return nil, newErrNoOffset(Malformed, "request ID must be non-zero")
	}

	var buf bytes.Buffer
	buf.WriteByte(m.Version.Major)
	buf.WriteByte(m.Version.Minor)

	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:2], uint16(m.Code))
	buf.Write(hdr[0:2])
	binary.BigEndian.PutUint32(hdr[0:4], uint32(m.RequestID))
	buf.Write(hdr[0:4])

	for _, g := range m.Groups() {
		buf.WriteByte(byte(g.Tag))
		for _, attr := range g.Attrs {
			if err := encodeAttr(&buf, attr); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte(byte(TagEnd))
	buf.Write(m.Data)

	return buf.Bytes(), nil
}

// encodeAttr writes one attribute: a named record for the first
// value, then a zero-name record per additional value.
func encodeAttr(buf *bytes.Buffer, attr Attribute) error {
	if len(attr.Values) == 0 {
		return newErrNoOffset(Malformed,
			"attribute %q has no values", attr.Name)
	}
	if len(attr.Name) > 0x7fff {
		return newErrNoOffset(Malformed,
			"attribute name is %d bytes, max 32767", len(attr.Name))
	}

	name := attr.Name
	for _, tv := range attr.Values {
		if tv.Tag.IsDelimiter() || tv.Tag == TagExtension {
			return newErrNoOffset(Malformed,
				"attribute %q: %s is not a value tag", attr.Name, tv.Tag)
		}

		buf.WriteByte(byte(tv.Tag))

		var nameLen [2]byte
		binary.BigEndian.PutUint16(nameLen[:], uint16(len(name)))
		buf.Write(nameLen[:])
		buf.WriteString(name)

		buf.Write(tv.Value.encodePayload())

		name = "" // continuation records carry an empty name
	}
	return nil
}
