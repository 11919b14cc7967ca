/* Go IPP - IPP core protocol codec in pure Go
 *
 * Package documentation
 */

/*
Package ipp implements the Internet Printing Protocol message format
defined by RFC 2910, with the attribute semantics of RFC 2911.

The package is a pure codec. It converts between the binary wire
format and the Message model ([Parse], [Message.Encode]), carries a
typed value for every RFC 2910 value tag, and includes an incremental
[StreamParser] that extracts the message header from a chunked byte
stream while passing the document body through unbuffered.

It deliberately implements no IPP semantics: no operation dispatch, no
printer or job state, no transport. Callers that speak IPP over HTTP
feed the request body to [StreamParser] (or, buffered, to [Parse]) and
send back the bytes of [Message.Encode].
*/
package ipp
