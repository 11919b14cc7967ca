/* Go IPP - IPP core protocol codec in pure Go
 *
 * IPP Message decoder
 */

package ipp

import (
	"encoding/binary"
)

// Parse decodes a complete IPP message from data. The slice must hold
// the whole message: the 8-byte header, the attribute groups, the
// end-of-attributes marker, and optionally the trailing document body
// (which ends up in Message.Data, unconsumed and uncopied beyond a
// reslice).
//
// Parse never modifies data, and the returned Message aliases data's
// tail for Data but copies everything else.
func Parse(data []byte) (*Message, error) {
	md := messageDecoder{in: data}
	m := &Message{}
	if err := md.decode(m); err != nil {
		return nil, err
	}
	return m, nil
}

// messageDecoder tracks the decoder's position within the input
// buffer, so errors can report the offset they were detected at.
type messageDecoder struct {
	in  []byte // the whole input
	off int    // consumed so far
}

// rest returns the unconsumed portion of the input.
func (md *messageDecoder) rest() []byte {
	return md.in[md.off:]
}

// need reports whether n more bytes are available.
func (md *messageDecoder) need(n int) bool {
	return len(md.in)-md.off >= n
}

// u8 consumes one byte. The caller must have checked need(1).
func (md *messageDecoder) u8() byte {
	b := md.in[md.off]
	md.off++
	return b
}

// i16 consumes a big-endian signed 16-bit integer. The caller must
// have checked need(2).
func (md *messageDecoder) i16() int16 {
	v := int16(binary.BigEndian.Uint16(md.in[md.off:]))
	md.off += 2
	return v
}

// i32 consumes a big-endian signed 32-bit integer. The caller must
// have checked need(4).
func (md *messageDecoder) i32() int32 {
	v := int32(binary.BigEndian.Uint32(md.in[md.off:]))
	md.off += 4
	return v
}

// take consumes n bytes and returns them as a sub-slice of the input.
// The caller must have checked need(n).
func (md *messageDecoder) take(n int) []byte {
	b := md.in[md.off : md.off+n]
	md.off += n
	return b
}

func (md *messageDecoder) decode(m *Message) error {
	// Wire format:
	//
	//   2 bytes:  Version
	//   2 bytes:  Code (Operation or Status)
	//   4 bytes:  RequestID
	//   variable: attribute groups
	//   1 byte:   TagEnd
	//   variable: Data

	if !md.need(8) {
		return newErr(Truncated, md.off,
			"message header needs 8 bytes, have %d", len(md.in))
	}

	m.Version = Version{Major: md.u8(), Minor: md.u8()}
	m.Code = Code(md.i16())
	m.RequestID = md.i32()

	// Group loop. Each iteration consumes one delimiter byte and, for
	// a group tag, the run of attribute records that follows it.
	for {
		if !md.need(1) {
			return newErr(Truncated, md.off,
				"input ended without end-of-attributes marker")
		}

		tag := Tag(md.u8())
		switch {
		case tag == TagEnd:
			m.Data = md.rest()
			if len(m.Data) == 0 {
				m.Data = nil
			}
			return nil

		case tag.IsGroup():
			group := m.groupBucket(tag)
			if err := md.decodeAttrs(group); err != nil {
				return err
			}

		default:
			return newErr(UnsupportedGroup, md.off-1,
				"unsupported group tag %s", tag)
		}
	}
}

// decodeAttrs consumes attribute records into group until the next
// byte is a delimiter (which it leaves unconsumed for the group loop).
func (md *messageDecoder) decodeAttrs(group *Attributes) error {
	for {
		if !md.need(1) {
			return newErr(Truncated, md.off,
				"input ended inside an attribute group")
		}

		tag := Tag(md.in[md.off])
		if tag.IsDelimiter() {
			// Next group (or the end marker). Hand the byte back.
			return nil
		}
		tagOff := md.off
		md.off++

		if !md.need(2) {
			return newErr(Truncated, md.off, "truncated attribute name length")
		}
		nameLen := md.i16()
		if nameLen < 0 {
			return newErr(Malformed, md.off-2,
				"negative attribute name length %d", nameLen)
		}
		if !md.need(int(nameLen)) {
			return newErr(Truncated, md.off, "truncated attribute name")
		}
		name := string(md.take(int(nameLen)))

		if !md.need(2) {
			return newErr(Truncated, md.off, "truncated value length")
		}
		valueLen := md.i16()
		if valueLen < 0 {
			return newErr(Malformed, md.off-2,
				"negative value length %d", valueLen)
		}
		if !md.need(int(valueLen)) {
			return newErr(Truncated, md.off, "truncated value")
		}
		valueOff := md.off
		valueData := md.take(int(valueLen))

		// The extension escape: the real tag is carried in the first
		// four octets of the value area.
		if tag == TagExtension {
			if len(valueData) < 4 {
				return newErr(Malformed, valueOff,
					"extension tag value needs at least 4 bytes, have %d",
					len(valueData))
			}
			tag = Tag(binary.BigEndian.Uint32(valueData))
			valueData = valueData[4:]
		}

		value, err := decodeValue(tag, valueData)
		if err != nil {
			if e, ok := err.(*Error); ok {
				if e.Offset < 0 {
					e.Offset = tagOff
				}
				return e
			}
			return wrapErr(Malformed, valueOff, err, "bad %s value", tag)
		}

		if nameLen == 0 {
			// Additional value of the previous attribute.
			prev := group.last()
			if prev == nil {
				return newErr(UnexpectedContinuation, valueOff,
					"additional value without a preceding named attribute")
			}
			prev.Values.Add(tag, value)
		} else {
			group.Add(MakeAttribute(name, tag, value))
		}
	}
}

// decodeValue dispatches on the value tag to the per-kind payload
// decoder.
func decodeValue(tag Tag, data []byte) (Value, error) {
	switch tag {
	case TagUnsupportedValue, TagDefault, TagUnknown, TagNoValue:
		return decodeVoid(data)
	case TagInteger, TagEnum:
		return decodeInteger(data)
	case TagBoolean:
		return decodeBoolean(data)
	case TagOctetString:
		return decodeOctetString(data)
	case TagDateTime:
		return decodeDateTime(data)
	case TagResolution:
		return decodeResolution(data)
	case TagRange:
		return decodeRange(data)
	case TagTextWithLang, TagNameWithLang:
		return decodeStringWithLang(data)
	case TagText, TagName,
		TagKeyword, TagURI, TagURIScheme,
		TagCharset, TagNaturalLanguage, TagMimeMediaType:
		return decodeString(data)
	}
	return nil, newErrNoOffset(UnsupportedValueTag,
		"unsupported value tag %s", tag)
}
