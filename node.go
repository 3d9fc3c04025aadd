package blk

// Entry is a single item of a Block, either a *Section or a *Property.
type Entry interface {
	Pos() Pos

	Err(msg string) error
}

type node struct {
	pos Pos
}

func (n node) Pos() Pos {
	return n.pos
}

func (n node) Err(msg string) error {
	return n.pos.Err(msg)
}

// Config is the root of a parsed BLK document.
type Config struct {
	Block *Block
}

// Block is an ordered sequence of entries. Order is significant and
// duplicate names are legal and distinct. A Block may be empty.
type Block struct {
	node

	Entries []Entry
}

// Section is a named entry holding a nested Block.
type Section struct {
	node

	Name  string
	Block *Block
}

// Property is a named entry holding a single typed value.
type Property struct {
	node

	Name  string
	Value Value
}

// Value is the value of a Property. The eight types below are the only
// implementations, one per type tag.
type Value interface {
	Type() Type
}

type (
	Text  string
	Bool  bool
	Int   int32
	Real  float32
	Vec2  [2]float32
	Vec3  [3]float32
	Vec4  [4]float32
	Color [4]int32
)

func (Text) Type() Type  { return TextType }
func (Bool) Type() Type  { return BoolType }
func (Int) Type() Type   { return IntType }
func (Real) Type() Type  { return RealType }
func (Vec2) Type() Type  { return Vec2Type }
func (Vec3) Type() Type  { return Vec3Type }
func (Vec4) Type() Type  { return Vec4Type }
func (Color) Type() Type { return ColorType }
