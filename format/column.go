package format

// Column is an in-memory typed column: a name, a closed type tag, and exactly
// one populated value slice matching the tag. All columns written into one
// file must share the same row count.
//
// Construct columns through NewInt32Column, NewFloat64Column or
// NewStringColumn so the type tag and the populated slice always agree.
type Column struct {
	Name string
	Type ColumnType

	Ints    []int32
	Floats  []float64
	Strings []string
}

// NewInt32Column creates an Int32 column from the given values.
// The slice is retained, not copied.
func NewInt32Column(name string, values []int32) Column {
	return Column{Name: name, Type: TypeInt32, Ints: values}
}

// NewFloat64Column creates a Float64 column from the given values.
// The slice is retained, not copied.
func NewFloat64Column(name string, values []float64) Column {
	return Column{Name: name, Type: TypeFloat64, Floats: values}
}

// NewStringColumn creates a String column from the given values.
// The slice is retained, not copied.
func NewStringColumn(name string, values []string) Column {
	return Column{Name: name, Type: TypeString, Strings: values}
}

// Len returns the number of rows in the column.
func (c Column) Len() int {
	switch c.Type {
	case TypeInt32:
		return len(c.Ints)
	case TypeFloat64:
		return len(c.Floats)
	case TypeString:
		return len(c.Strings)
	default:
		return 0
	}
}

// Descriptor is a column's schema entry: its name and type, in file order.
type Descriptor struct {
	Name string
	Type ColumnType
}

// Descriptor returns the column's schema entry.
func (c Column) Descriptor() Descriptor {
	return Descriptor{Name: c.Name, Type: c.Type}
}
