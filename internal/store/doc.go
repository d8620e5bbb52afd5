// Package store provides SQLite-backed storage for named measurements.
//
// Each measurement is a codec.Record stored under a unique name, together
// with its content digest and a logical write sequence number. Names are
// valid expression variables, so a stored measurement can be referenced as
// "$name".
//
// # Ordering
//
// All listings use seq (a logical clock), never timestamps:
// ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Row IDs come from an IDGenerator, UUIDv7 by default. Tests inject fixed IDs
// with WithIDGenerator.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
