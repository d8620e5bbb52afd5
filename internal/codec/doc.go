// Package codec converts quantities to and from a domain-agnostic record
// form, and computes content-addressed digests over it.
//
// A Record carries every number as a literal in its domain's syntax, so a
// rational quantity survives a JSON or database round trip exactly. Digest
// hashes the canonical JSON of a record with a versioned domain prefix;
// equal quantities in the same number domain have equal digests.
package codec
