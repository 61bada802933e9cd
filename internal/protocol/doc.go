// Package protocol owns the bridge wire contract primitives.
//
// Ownership boundary:
// - multipart frame layout (delimiter, tag, command, key/value pairs)
// - control-reply and event frame validators
// - JSON argument value round-trip
package protocol
