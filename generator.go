/* Go IPP - IPP core protocol codec in pure Go
 *
 * Generator helpers: validating constructors for attribute values
 */

package ipp

import (
	"math"
	"strings"
)

// The helpers in this file are the validating path into the value
// model: each accepts native Go inputs, checks the constraints RFC
// 2910/2911 put on the corresponding value kind, and returns a Value
// ready to be stored under the matching tag with MakeAttribute or
// Values.Add. Failures are *Error with Kind InvalidInput.
//
// Values can also be constructed directly (Integer(5), String("x"));
// the helpers exist for input that crosses a trust boundary.

// MakeInteger validates v against the signed 32-bit range of the
// integer and enum wire encodings.
func MakeInteger(v int) (Integer, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, newErrNoOffset(InvalidInput,
			"integer %d outside the signed 32-bit range", v)
	}
	return Integer(v), nil
}

// MakeBoolean converts a Go bool to the wire Boolean.
func MakeBoolean(v bool) Boolean {
	return Boolean(v)
}

// MakeEnum validates v against the enum value range: RFC 2911 Section
// 4.1.4 reserves 0 and 1, so valid enum values are 2..2^31-1.
func MakeEnum(v int) (Integer, error) {
	if v < 2 || v > math.MaxInt32 {
		return 0, newErrNoOffset(InvalidInput,
			"enum %d outside the range 2..2147483647", v)
	}
	return Integer(v), nil
}

// MakeEnumByLabel resolves label against an ordered set of enum
// labels, where the first element of set corresponds to enum value 2
// (the lowest value RFC 2911 allows). An unknown label is an
// InvalidInput error.
func MakeEnumByLabel(label string, set []string) (Integer, error) {
	for i, s := range set {
		if s == label {
			return Integer(i + 2), nil
		}
	}
	return 0, newErrNoOffset(InvalidInput,
		"enum label %q not in the value set", label)
}

// MakeResolution validates the axis values (non-negative) and the
// unit (dots per inch or dots per centimeter).
func MakeResolution(x, y int, unit Unit) (Resolution, error) {
	if x < 0 || x > math.MaxInt32 || y < 0 || y > math.MaxInt32 {
		return Resolution{}, newErrNoOffset(InvalidInput,
			"resolution %dx%d outside the range 0..2147483647", x, y)
	}
	if unit != UnitPerInch && unit != UnitPerCm {
		return Resolution{}, newErrNoOffset(InvalidInput,
			"resolution unit must be per-inch (3) or per-cm (4), got %d", unit)
	}
	return Resolution{X: int32(x), Y: int32(y), Unit: unit}, nil
}

// MakeRange builds a rangeOfInteger value, swapping the bounds if they
// arrive reversed so Lower <= Upper always holds.
func MakeRange(a, b int) (Range, error) {
	if a < math.MinInt32 || a > math.MaxInt32 ||
		b < math.MinInt32 || b > math.MaxInt32 {
		return Range{}, newErrNoOffset(InvalidInput,
			"range bound outside the signed 32-bit range")
	}
	if a > b {
		a, b = b, a
	}
	return Range{Lower: int32(a), Upper: int32(b)}, nil
}

// MakeStringWithLang validates a textWithLanguage or nameWithLanguage
// value: the language tag must be non-empty after trimming whitespace,
// and the text must be non-empty.
func MakeStringWithLang(lang, text string) (StringWithLang, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return StringWithLang{}, newErrNoOffset(InvalidInput,
			"language tag is empty")
	}
	if text == "" {
		return StringWithLang{}, newErrNoOffset(InvalidInput,
			"string is empty")
	}
	if err := checkASCII(lang); err != nil {
		return StringWithLang{}, err
	}
	return StringWithLang{Language: lang, Text: text}, nil
}

// MakeKeyword validates a keyword value (US-ASCII only).
func MakeKeyword(s string) (String, error) { return makeASCII(s) }

// MakeURI validates a uri value (US-ASCII only).
func MakeURI(s string) (String, error) { return makeASCII(s) }

// MakeURIScheme validates a uriScheme value (US-ASCII only).
func MakeURIScheme(s string) (String, error) { return makeASCII(s) }

// MakeCharset validates a charset value (US-ASCII only).
func MakeCharset(s string) (String, error) { return makeASCII(s) }

// MakeNaturalLanguage validates a naturalLanguage value (US-ASCII
// only).
func MakeNaturalLanguage(s string) (String, error) { return makeASCII(s) }

// MakeMimeMediaType validates a mimeMediaType value (US-ASCII only).
func MakeMimeMediaType(s string) (String, error) { return makeASCII(s) }

func makeASCII(s string) (String, error) {
	if err := checkASCII(s); err != nil {
		return "", err
	}
	return String(s), nil
}

func checkASCII(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return newErrNoOffset(InvalidInput,
				"non-ASCII octet 0x%02x at index %d", s[i], i)
		}
	}
	return nil
}
