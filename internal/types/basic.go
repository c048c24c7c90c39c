package types

// PrimitiveKind enumerates the primitive (non-reference) Java types.
type PrimitiveKind int

const (
	Boolean PrimitiveKind = iota
	Byte
	Short
	Char
	Int
	Long
	Float
	Double
)

var primitiveNames = [...]string{
	Boolean: "boolean",
	Byte:    "byte",
	Short:   "short",
	Char:    "char",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
}

// Primitive represents a primitive type: boolean, byte, short, char,
// int, long, float or double.
type Primitive struct {
	typ
	kind PrimitiveKind
}

// Kind returns the primitive's kind.
func (p *Primitive) Kind() PrimitiveKind { return p.kind }

// String implements Type.
func (p *Primitive) String() string { return primitiveNames[p.kind] }

// numeric widening lattice, JLS 5.1.2: each primitive widens to every
// primitive reachable by the listed direct edges (transitively).
var numericWidensTo = map[PrimitiveKind][]PrimitiveKind{
	Byte:  {Short, Int, Long, Float, Double},
	Short: {Int, Long, Float, Double},
	Char:  {Int, Long, Float, Double},
	Int:   {Long, Float, Double},
	Long:  {Float, Double},
	Float: {Double},
}

// widens reports whether a value of kind from can be widened to kind to
// without narrowing, per the numeric promotion lattice. Boolean widens
// to nothing and nothing widens to it.
func widens(from, to PrimitiveKind) bool {
	if from == to {
		return true
	}
	for _, k := range numericWidensTo[from] {
		if k == to {
			return true
		}
	}
	return false
}

// NullType is the bottom type for reference types. It is a subtype of
// every non-primitive type and cannot enumerate a supertype set.
type NullType struct{ typ }

// String implements Type.
func (*NullType) String() string { return "<nulltype>" }

// SentinelKind enumerates the TypeSystem's distinguished singleton
// reference types that are not themselves modeled structurally.
type SentinelKind int

const (
	Object SentinelKind = iota
	Cloneable
	Serializable
	UnresolvedType
	ErrorType
	NoType
)

var sentinelNames = [...]string{
	Object:         "java.lang.Object",
	Cloneable:      "java.lang.Cloneable",
	Serializable:   "java.io.Serializable",
	UnresolvedType: "<unresolved>",
	ErrorType:      "<error>",
	NoType:         "<notype>",
}

// Sentinel is one of the TypeSystem's distinguished singleton types:
// Object, Cloneable, Serializable, the unresolved/error markers, and the
// "no type" marker used for void/constructor return positions.
type Sentinel struct {
	typ
	kind SentinelKind
}

// Kind returns the sentinel's kind.
func (s *Sentinel) Kind() SentinelKind { return s.kind }

// String implements Type.
func (s *Sentinel) String() string { return sentinelNames[s.kind] }
