// Package types defines the schema, selection, and error contracts shared by
// the modelbuddy engine, the driver dialects, and the modelctl CLI.
package types
