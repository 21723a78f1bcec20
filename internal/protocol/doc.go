// Package protocol encodes and decodes the messages carried on the server packs
// side channel.
//
// Inbound sync messages carry no command tag: a big-endian int32 entry count is
// followed by that many (pack id, source url) string pairs. Strings use the
// DataOutput layout of a big-endian uint16 byte length followed by UTF-8 bytes.
// The only outbound message is the single-byte refresh command.
package protocol
