/* Go IPP - IPP core protocol codec in pure Go
 *
 * Message attributes
 */

package ipp

import (
	"bytes"
	"fmt"
)

// taggedValue pairs a Value with the value-tag it was (or will be)
// written under. An attribute's values are not necessarily all
// written under the same tag-in principle RFC 2910 doesn't forbid
// mixed-tag 1setOf attributes, though nothing in this package
// generates them.
type taggedValue struct {
	Tag   Tag
	Value Value
}

// Values is an ordered sequence of tagged values, normally the
// payload of a single Attribute.
type Values []taggedValue

// Add appends a tagged value.
func (values *Values) Add(tag Tag, v Value) {
	*values = append(*values, taggedValue{tag, v})
}

// String renders Values the way a 1setOf attribute prints: a single
// value prints bare, multiple values print comma-separated in
// brackets.
func (values Values) String() string {
	if len(values) == 1 {
		return values[0].Value.String()
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if i != 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(v.Value.String())
	}
	buf.WriteByte(']')
	return buf.String()
}

// Attribute is a single named, possibly multi-valued attribute.
type Attribute struct {
	Name   string
	Values Values
}

// MakeAttribute builds an Attribute with a single value.
func MakeAttribute(name string, tag Tag, value Value) Attribute {
	attr := Attribute{Name: name}
	attr.Values.Add(tag, value)
	return attr
}

// MakeAttr builds an Attribute with one or more values sharing the
// same tag, i.e. a 1setOf attribute.
func MakeAttr(name string, tag Tag, value Value, rest ...Value) Attribute {
	attr := Attribute{Name: name}
	attr.Values.Add(tag, value)
	for _, v := range rest {
		attr.Values.Add(tag, v)
	}
	return attr
}

// Attributes is an ordered sequence of attributes, normally the
// payload of one attribute group. Order of iteration is insertion
// order, which the encoder preserves verbatim (spec.md requires this
// for byte-exact re-encoding of a decoded message).
type Attributes []Attribute

// Add appends an attribute.
func (attrs *Attributes) Add(attr Attribute) {
	*attrs = append(*attrs, attr)
}

// Get returns the attribute with the given name, and whether it was
// found. When an attribute was added more than once under the same
// name (which well-formed IPP never does outside of 1setOf
// continuation records, already folded into one Attribute by the
// decoder), the first occurrence wins.
func (attrs Attributes) Get(name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// last returns a pointer to the most recently added attribute, or nil
// if attrs is empty. Used by the decoder to attach 1setOf
// continuation values to the attribute they extend.
func (attrs Attributes) last() *Attribute {
	if len(attrs) == 0 {
		return nil
	}
	return &attrs[len(attrs)-1]
}

func (attrs Attributes) String() string {
	var buf bytes.Buffer
	for i, a := range attrs {
		if i != 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%s=%s", a.Name, a.Values)
	}
	return buf.String()
}
