// Package store provides SQLite-backed durable storage for the logbook.
//
// Two tables back the data model:
//   - callsigns: one row per unique operator callsign
//   - qsos: one row per logged contact, referencing a callsign
//
// All uniqueness and referential invariants live in the schema, not in
// application code, so no caller can corrupt the dataset by bypassing a
// validation that only exists in the UI layer:
//   - callsigns.call UNIQUE → DUPLICATE_CALLSIGN
//   - qsos(callsign_id, date, time) UNIQUE → DUPLICATE_QSO
//   - qsos.callsign_id foreign key → UNKNOWN_CALLSIGN
//
// Open binds to the database file and applies pragmas only; schema
// creation is a separate, idempotent CreateSchema call so the CLI can
// gate it behind a confirmation when the target already holds data.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
