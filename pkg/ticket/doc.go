// Package ticket provides the Seytic ticket store: a typed CRUD layer and
// statistics aggregator over a single key in a key-value store.
//
// The entire collection is serialized as one JSON array under one key.
// Every mutation is a full read-modify-write of that value: the repository
// materializes the collection, applies the change, and writes the whole
// collection back. A missing value reads as an empty collection.
//
// The backing store is injected via the Store interface. RedisStore backs
// the CLI; MemoryStore is an in-process implementation for tests and
// embedders. There is no cross-client coordination: two clients mutating
// the same key concurrently race, and the last writer wins.
package ticket
