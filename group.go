/* Go IPP - IPP core protocol codec in pure Go
 *
 * Attribute groups
 */

package ipp

// groupOrder is the canonical attribute-group order spec.md requires
// on encode, regardless of the order groups were populated in: the
// end-of-attributes marker always follows whichever of these groups
// are non-empty.
var groupOrder = []Tag{
	TagOperationGroup,
	TagJobGroup,
	TagPrinterGroup,
	TagUnsupportedGroup,
}

// Group pairs a group tag with the attributes that belong to it, as
// produced by Message.Groups for encoding and pretty-printing.
type Group struct {
	Tag   Tag
	Attrs Attributes
}
