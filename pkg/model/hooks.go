package model

// Tabler supplies the table name for a concrete entity type. Every entity
// handed to the engine implements at least this.
type Tabler interface {
	TableName() string
}

// Validator lets an entity veto persistence. When Validate returns false,
// Engine.Update performs no I/O and returns nil.
type Validator interface {
	Validate(r *Record) bool
}

// Blanker replaces default-population. When the selection matches no row
// (or the record is created fresh), Blank is invoked instead of filling the
// field bag with the columns' declared defaults.
type Blanker interface {
	Blank(r *Record)
}

// AfterLoader is invoked once after load or default-population completes,
// whether or not a row was found.
type AfterLoader interface {
	AfterLoad(r *Record)
}
