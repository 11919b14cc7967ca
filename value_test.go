/* Go IPP - IPP core protocol codec in pure Go
 *
 * Value model tests
 */

package ipp

import (
	"bytes"
	"testing"
	"time"
)

// TestValuePayloads tests the length-prefixed wire payload of each
// value kind.
func TestValuePayloads(t *testing.T) {
	type testData struct {
		name     string
		value    Value
		expected []byte
	}

	tests := []testData{
		{
			name:     "void",
			value:    Void{},
			expected: []byte{0x00, 0x00},
		},
		{
			name:     "integer",
			value:    Integer(0x12345678),
			expected: []byte{0x00, 0x04, 0x12, 0x34, 0x56, 0x78},
		},
		{
			name:     "negative integer",
			value:    Integer(-1),
			expected: []byte{0x00, 0x04, 0xff, 0xff, 0xff, 0xff},
		},
		{
			name:     "boolean false",
			value:    Boolean(false),
			expected: []byte{0x00, 0x01, 0x00},
		},
		{
			name:     "boolean true",
			value:    Boolean(true),
			expected: []byte{0x00, 0x01, 0x01},
		},
		{
			name:     "octet string",
			value:    OctetString{0xde, 0xad},
			expected: []byte{0x00, 0x02, 0xde, 0xad},
		},
		{
			name:  "resolution",
			value: Resolution{X: 600, Y: 300, Unit: UnitPerCm},
			expected: []byte{
				0x00, 0x09,
				0x00, 0x00, 0x02, 0x58,
				0x00, 0x00, 0x01, 0x2c,
				0x04,
			},
		},
		{
			name:  "range",
			value: Range{Lower: 1, Upper: 99},
			expected: []byte{
				0x00, 0x08,
				0x00, 0x00, 0x00, 0x01,
				0x00, 0x00, 0x00, 0x63,
			},
		},
		{
			name:  "string with language",
			value: StringWithLang{Language: "en", Text: "hi"},
			expected: []byte{
				0x00, 0x08,
				0x00, 0x02, 'e', 'n',
				0x00, 0x02, 'h', 'i',
			},
		},
		{
			name:     "string",
			value:    String("utf-8"),
			expected: []byte{0x00, 0x05, 'u', 't', 'f', '-', '8'},
		},
		{
			name:     "empty string",
			value:    String(""),
			expected: []byte{0x00, 0x00},
		},
	}

	for _, test := range tests {
		payload := test.value.encodePayload()
		if !bytes.Equal(payload, test.expected) {
			t.Errorf("%s: payload mismatch:\nexpected: %x\ngot:      %x",
				test.name, test.expected, payload)
		}
	}
}

// TestDateTime tests the RFC 2579 encoding against a known wire image
// and the decode side's zone reconstruction.
func TestDateTime(t *testing.T) {
	tz := time.FixedZone("UTC+2", 2*3600)
	v := DateTime{time.Date(2024, time.March, 5, 14, 30, 45,
		700000000, tz)}

	expected := []byte{
		0x00, 0x0b,
		0x07, 0xe8, // 2024
		0x03, 0x05, // March 5
		0x0e, 0x1e, 0x2d, // 14:30:45
		0x07,       // .7s
		'+', 2, 0, // UTC+2:00
	}

	payload := v.encodePayload()
	if !bytes.Equal(payload, expected) {
		t.Fatalf("payload mismatch:\nexpected: %x\ngot:      %x",
			expected, payload)
	}

	decoded, err := decodeDateTime(payload[2:])
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !decoded.(DateTime).Equal(v.Time) {
		t.Errorf("round trip: expected %s, got %s", v, decoded)
	}
	if _, off := decoded.(DateTime).Zone(); off != 2*3600 {
		t.Errorf("zone offset: expected %d, got %d", 2*3600, off)
	}

	// Negative zone offset
	tz = time.FixedZone("UTC-11", -11*3600)
	v = DateTime{time.Date(1999, time.December, 31, 23, 59, 59, 0, tz)}
	decoded, err = decodeDateTime(v.encodePayload()[2:])
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	if !decoded.(DateTime).Equal(v.Time) {
		t.Errorf("round trip: expected %s, got %s", v, decoded)
	}
}

// TestDateTimeValidation tests the decoder's field range checks.
func TestDateTimeValidation(t *testing.T) {
	good := []byte{0x07, 0xe8, 3, 5, 14, 30, 45, 7, '+', 2, 0}

	corrupt := func(i int, b byte) []byte {
		bad := append([]byte{}, good...)
		bad[i] = b
		return bad
	}

	bads := [][]byte{
		good[:10],         // short
		corrupt(2, 0),     // month 0
		corrupt(2, 13),    // month 13
		corrupt(3, 0),     // day 0
		corrupt(3, 32),    // day 32
		corrupt(4, 24),    // hour 24
		corrupt(5, 60),    // minute 60
		corrupt(6, 61),    // second 61
		corrupt(7, 10),    // deci-second 10
		corrupt(8, '*'),   // bad direction
		corrupt(9, 12),    // UTC hours 12
		corrupt(10, 60),   // UTC minutes 60
	}

	if _, err := decodeDateTime(good); err != nil {
		t.Fatalf("valid dateTime rejected: %s", err)
	}
	for i, bad := range bads {
		if _, err := decodeDateTime(bad); err == nil {
			t.Errorf("bad dateTime %d accepted", i)
		}
	}
}

// TestValueStrings tests the debug renderings the formatter relies
// on.
func TestValueStrings(t *testing.T) {
	type testData struct {
		value    Value
		expected string
	}

	tests := []testData{
		{Integer(42), "42"},
		{Boolean(true), "true"},
		{OctetString{0xab, 0xcd}, "abcd"},
		{Resolution{600, 600, UnitPerInch}, "600x600dpi"},
		{Resolution{100, 100, UnitPerCm}, "100x100dpcm"},
		{Range{1, 99}, "1-99"},
		{StringWithLang{"en", "hello"}, "hello [en]"},
		{String("media"), "media"},
		{Void{}, ""},
	}

	for _, test := range tests {
		if s := test.value.String(); s != test.expected {
			t.Errorf("expected %q, got %q", test.expected, s)
		}
	}
}

// TestTagStrings spot-checks the tag name table.
func TestTagStrings(t *testing.T) {
	type testData struct {
		tag      Tag
		expected string
	}

	tests := []testData{
		{TagOperationGroup, "operation-attributes-tag"},
		{TagEnd, "end-of-attributes-tag"},
		{TagKeyword, "keyword"},
		{TagExtension, "extension"},
		{Tag(0x77), "0x77"},
	}

	for _, test := range tests {
		if s := test.tag.String(); s != test.expected {
			t.Errorf("tag 0x%02x: expected %q, got %q",
				uint8(test.tag), test.expected, s)
		}
	}
}
