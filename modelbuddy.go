// Package modelbuddy is a runtime-schema record mapper. A concrete entity
// type names its table; the engine introspects that table's columns once per
// process, resolves a selection criterion into a row, hydrates a dynamic
// field bag, and persists mutations back as INSERT, UPDATE, or DELETE.
//
// The library core lives in pkg/model (engine and record lifecycle) and
// pkg/types (schema, selection, and error contracts). Driver dialects for
// SQLite, MySQL, and PostgreSQL live in internal/schema. The modelctl CLI
// under cmd/modelctl drives the engine against a live database.
package modelbuddy

// Version is the modelbuddy release version, printed by modelctl version.
const Version = "0.1.0"
