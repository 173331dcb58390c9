// Package kvstore provides the durable key-value byte store that backs the
// device list, the footprint history, and cached grid intensities.
//
// Two implementations are provided:
//   - FileStore keeps one JSON envelope file per key under a directory
//     (default ~/.footprint/store), written atomically via temp file + rename.
//   - MemoryStore keeps entries in process memory, for tests and one-shot runs.
//
// Both support an optional store-wide TTL. Entries written with a zero TTL
// never expire.
package kvstore
