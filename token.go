package blk

type token uint

//go:generate stringer -type token -linecomment
const (
	_EOF token = iota + 1 // eof

	_Name   // name
	_Number // number
	_String // string

	_Semi  // separator
	_Comma // comma

	_Colon  // :
	_Assign // =
	_Lbrace // {
	_Rbrace // }

	_Bad // invalid
)

// Type is the type tag of a property, the one-or-two-letter code between
// the ':' and the '=' of a property entry.
type Type uint

//go:generate stringer -type Type -linecomment
const (
	TextType  Type = iota + 1 // t
	BoolType                  // b
	IntType                   // i
	RealType                  // r
	Vec2Type                  // p2
	Vec3Type                  // p3
	Vec4Type                  // p4
	ColorType                 // c
)

var typeTags = map[string]Type{
	"t":  TextType,
	"b":  BoolType,
	"i":  IntType,
	"r":  RealType,
	"p2": Vec2Type,
	"p3": Vec3Type,
	"p4": Vec4Type,
	"c":  ColorType,
}
