/* Go IPP - IPP core protocol codec in pure Go
 *
 * Generator helper tests
 */

package ipp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireInvalidInput asserts that err is an *Error of Kind
// InvalidInput.
func requireInvalidInput(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, InvalidInput, e.Kind)
}

func TestMakeInteger(t *testing.T) {
	v, err := MakeInteger(42)
	require.NoError(t, err)
	assert.Equal(t, Integer(42), v)

	v, err = MakeInteger(math.MinInt32)
	require.NoError(t, err)
	assert.Equal(t, Integer(math.MinInt32), v)

	_, err = MakeInteger(math.MaxInt32 + 1)
	requireInvalidInput(t, err)

	_, err = MakeInteger(math.MinInt32 - 1)
	requireInvalidInput(t, err)
}

func TestMakeEnum(t *testing.T) {
	v, err := MakeEnum(3)
	require.NoError(t, err)
	assert.Equal(t, Integer(3), v)

	_, err = MakeEnum(1)
	requireInvalidInput(t, err)

	_, err = MakeEnum(math.MaxInt32 + 1)
	requireInvalidInput(t, err)
}

func TestMakeEnumByLabel(t *testing.T) {
	states := []string{"pending", "pending-held", "processing"}

	v, err := MakeEnumByLabel("pending", states)
	require.NoError(t, err)
	assert.Equal(t, Integer(2), v)

	v, err = MakeEnumByLabel("processing", states)
	require.NoError(t, err)
	assert.Equal(t, Integer(4), v)

	_, err = MakeEnumByLabel("aborted", states)
	requireInvalidInput(t, err)
}

func TestMakeResolution(t *testing.T) {
	v, err := MakeResolution(600, 1200, UnitPerInch)
	require.NoError(t, err)
	assert.Equal(t, Resolution{X: 600, Y: 1200, Unit: UnitPerInch}, v)

	_, err = MakeResolution(-1, 600, UnitPerInch)
	requireInvalidInput(t, err)

	_, err = MakeResolution(600, 600, Unit(7))
	requireInvalidInput(t, err)
}

func TestMakeRange(t *testing.T) {
	// Reversed bounds are normalised, not rejected.
	v, err := MakeRange(99, 1)
	require.NoError(t, err)
	assert.Equal(t, Range{Lower: 1, Upper: 99}, v)

	v, err = MakeRange(5, 5)
	require.NoError(t, err)
	assert.Equal(t, Range{Lower: 5, Upper: 5}, v)

	_, err = MakeRange(math.MaxInt32+1, 0)
	requireInvalidInput(t, err)
}

func TestMakeStringWithLang(t *testing.T) {
	v, err := MakeStringWithLang("en-us", "A4 paper")
	require.NoError(t, err)
	assert.Equal(t, StringWithLang{Language: "en-us", Text: "A4 paper"}, v)

	// Language is trimmed before the emptiness check.
	v, err = MakeStringWithLang("  de  ", "Papier")
	require.NoError(t, err)
	assert.Equal(t, "de", v.Language)

	_, err = MakeStringWithLang("   ", "text")
	requireInvalidInput(t, err)

	_, err = MakeStringWithLang("en", "")
	requireInvalidInput(t, err)
}

func TestMakeASCIIKinds(t *testing.T) {
	type maker func(string) (String, error)

	makers := map[string]maker{
		"keyword":         MakeKeyword,
		"uri":             MakeURI,
		"uriScheme":       MakeURIScheme,
		"charset":         MakeCharset,
		"naturalLanguage": MakeNaturalLanguage,
		"mimeMediaType":   MakeMimeMediaType,
	}

	for name, mk := range makers {
		v, err := mk("us-ascii/7bit")
		require.NoError(t, err, name)
		assert.Equal(t, String("us-ascii/7bit"), v, name)

		_, err = mk("café")
		requireInvalidInput(t, err)
	}
}
