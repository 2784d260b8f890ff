package types

// SelectionMode identifies how a record's row was (or will be) located.
type SelectionMode int

const (
	// Unselected is the zero value: no criterion has been resolved.
	Unselected SelectionMode = iota

	// ByPrimaryKey locates a row by a bare primary key value.
	ByPrimaryKey

	// ByFieldMap locates a row by column/value equality pairs.
	ByFieldMap

	// ByPredicate locates a row by a caller-written WHERE expression.
	ByPredicate
)

func (m SelectionMode) String() string {
	switch m {
	case ByPrimaryKey:
		return "primary-key"
	case ByFieldMap:
		return "field-map"
	case ByPredicate:
		return "predicate"
	default:
		return "unselected"
	}
}

// Field is one column/value pair of an ordered field-map criterion.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered field-map criterion. Order is preserved into the
// generated predicate and its bind arguments; a plain Go map cannot
// guarantee that.
type Fields []Field

// Selection is the resolved WHERE state owned by one record: the predicate
// text that located the current row and the arguments bound to its
// placeholders. An empty predicate means the record is not backed by a row.
type Selection struct {
	Mode      SelectionMode
	Predicate string
	Args      []any
}

// Bound reports whether the selection refers to an existing row.
func (s Selection) Bound() bool {
	return s.Predicate != ""
}

// Clear drops the predicate and arguments but keeps the mode, marking the
// record unsaved while remembering how it was constructed.
func (s *Selection) Clear() {
	s.Predicate = ""
	s.Args = nil
}

// Reset returns the selection to its zero state, mode included.
func (s *Selection) Reset() {
	*s = Selection{}
}
