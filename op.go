/* Go IPP - IPP core protocol codec in pure Go
 *
 * IPP operation codes (RFC 2911 Section 4.4.15)
 */

package ipp

import "fmt"

// Op is an IPP operation code, the interpretation of Message.Code on
// a request.
type Op Code

// Operation codes defined by RFC 2911. This table is informational:
// Message.OperationName looks a code up here, but an unrecognised
// code is never a decode error — the decoder doesn't even look at
// Code's value, let alone validate it against this table.
const (
	OpPrintJob             Op = 0x0002
	OpPrintURI             Op = 0x0003
	OpValidateJob          Op = 0x0004
	OpCreateJob            Op = 0x0005
	OpSendDocument         Op = 0x0006
	OpSendURI              Op = 0x0007
	OpCancelJob            Op = 0x0008
	OpGetJobAttributes     Op = 0x0009
	OpGetJobs              Op = 0x000a
	OpGetPrinterAttributes Op = 0x000b
	OpHoldJob              Op = 0x000c
	OpReleaseJob           Op = 0x000d
	OpRestartJob           Op = 0x000e

	OpPausePrinter         Op = 0x0010
	OpResumePrinter        Op = 0x0011
	OpPurgeJobs            Op = 0x0012
)

// String returns the operation's RFC 2911 symbolic name, or a hex
// fallback for an unrecognised code.
func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("0x%04x", uint16(op))
}

var opNames = map[Op]string{
	OpPrintJob:             "Print-Job",
	OpPrintURI:             "Print-URI",
	OpValidateJob:          "Validate-Job",
	OpCreateJob:            "Create-Job",
	OpSendDocument:         "Send-Document",
	OpSendURI:              "Send-URI",
	OpCancelJob:            "Cancel-Job",
	OpGetJobAttributes:     "Get-Job-Attributes",
	OpGetJobs:              "Get-Jobs",
	OpGetPrinterAttributes: "Get-Printer-Attributes",
	OpHoldJob:              "Hold-Job",
	OpReleaseJob:           "Release-Job",
	OpRestartJob:           "Restart-Job",
	OpPausePrinter:         "Pause-Printer",
	OpResumePrinter:        "Resume-Printer",
	OpPurgeJobs:            "Purge-Jobs",
}
