/* Go IPP - IPP core protocol codec in pure Go
 *
 * Message pretty-printer
 */

package ipp

import (
	"fmt"
	"io"
)

// Dump pretty-prints the message to out, one attribute per line,
// grouped under their group tags. request selects whether Code is
// rendered as an operation or a status name. Dump is a debugging aid;
// its output is not a stable format.
func (m *Message) Dump(out io.Writer, request bool) {
	fmt.Fprintf(out, "{\n")
	fmt.Fprintf(out, "    VERSION %s\n", m.Version)

	if request {
		fmt.Fprintf(out, "    OPERATION %s\n", Op(m.Code))
	} else {
		fmt.Fprintf(out, "    STATUS %s\n", Status(m.Code))
	}
	fmt.Fprintf(out, "    REQUEST-ID %d\n", m.RequestID)

	for _, g := range m.Groups() {
		fmt.Fprintf(out, "\n    GROUP %s\n", g.Tag)
		for _, attr := range g.Attrs {
			dumpAttr(out, attr)
		}
	}

	if len(m.Data) > 0 {
		fmt.Fprintf(out, "\n    DATA %d bytes\n", len(m.Data))
	}

	fmt.Fprintf(out, "}\n")
}

func dumpAttr(out io.Writer, attr Attribute) {
	for i, tv := range attr.Values {
		if i == 0 {
			fmt.Fprintf(out, "    ATTR %q %s: %s\n",
				attr.Name, tv.Tag, tv.Value)
		} else {
			fmt.Fprintf(out, "         %*s %s: %s\n",
				len(attr.Name)+2, "", tv.Tag, tv.Value)
		}
	}
}
