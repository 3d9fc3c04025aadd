package blk

import (
	"errors"
	"strconv"
)

type parser struct {
	*scanner

	rest int
}

// Parse parses input as a BLK document. The name is only used for the
// positions attached to nodes and errors, and may be empty.
//
// On success Parse also returns the raw unconsumed suffix of input, which
// is non-empty when the document ends with something that cannot start a
// top-level entry. Callers should surface a non-blank leftover as a
// warning, the entries before it parsed fine.
//
// Parsing performs no recovery. The first rule that fails to match inside
// an entry aborts the whole parse with a *SyntaxError.
func Parse(name, input string) (*Config, string, error) {
	p := parser{
		scanner: newScanner(newSource(name, input)),
	}

	block, err := p.block(_EOF)
	if err != nil {
		return nil, "", err
	}

	// The scanner reads one token ahead, so it may have tripped over
	// something that was never consumed. Only an error before the leftover
	// boundary belongs to the document.
	if err := p.err; err != nil {
		var serr *SyntaxError

		if !errors.As(err, &serr) || serr.Pos.Off < p.rest {
			return nil, "", err
		}
	}
	return &Config{Block: block}, p.input[p.rest:], nil
}

func (p *parser) node() node {
	return node{
		pos: p.pos,
	}
}

func (p *parser) got(tok token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

func (p *parser) unexpected() error {
	if p.tok == _Bad {
		return p.pos.Err("unexpected character " + strconv.Quote(p.lit))
	}
	return p.pos.Err("unexpected " + p.tok.String())
}

// block parses entries up to the end token, _Rbrace for a section body or
// _EOF for the whole document. Separators are required between entries and
// optional before end. At the top level, input that cannot start an entry
// ends the block instead of failing, with p.rest marking where it begins.
func (p *parser) block(end token) (*Block, error) {
	n := &Block{
		node: p.node(),
	}

	for {
		if p.got(_Semi) {
			continue
		}
		if p.tok == end {
			break
		}
		if p.tok == _EOF {
			return nil, p.pos.Err("expected " + _Rbrace.String())
		}
		if p.tok != _Name {
			if end == _EOF {
				break
			}
			return nil, p.unexpected()
		}

		e, err := p.entry(end)
		if err != nil {
			return nil, err
		}
		if e == nil {
			// Not an entry after all, p.rest was set by entry.
			return n, nil
		}
		n.Entries = append(n.Entries, e)

		if !p.got(_Semi) && p.tok != end && p.tok != _EOF {
			return nil, p.pos.Err("expected " + _Semi.String() + " or " + end.String())
		}
	}
	p.rest = p.pos.Off
	return n, nil
}

// entry parses either a section or a property. Which one is decided by the
// token after the name, '{' and ':' cannot both follow it in well-formed
// input. Anything else means the name did not begin an entry, which ends a
// top-level block and fails a section body.
func (p *parser) entry(end token) (Entry, error) {
	pos := p.pos
	name := p.lit

	p.next()

	switch p.tok {
	case _Lbrace:
		p.next()

		block, err := p.block(_Rbrace)
		if err != nil {
			return nil, err
		}
		p.next()

		return &Section{
			node:  node{pos: pos},
			Name:  name,
			Block: block,
		}, nil
	case _Colon:
		p.next()
		return p.property(pos, name)
	default:
		if end == _EOF {
			p.rest = pos.Off
			return nil, nil
		}
		return nil, p.pos.Err("expected " + _Lbrace.String() + " or " + _Colon.String())
	}
}

func (p *parser) property(pos Pos, name string) (*Property, error) {
	if p.tok != _Name {
		return nil, p.pos.Err("expected property type")
	}

	typ, ok := typeTags[p.lit]
	if !ok {
		return nil, p.pos.Err("unknown property type " + strconv.Quote(p.lit))
	}
	p.next()

	if !p.got(_Assign) {
		return nil, p.pos.Err("expected " + _Assign.String())
	}

	val, err := p.value(typ)
	if err != nil {
		return nil, err
	}

	return &Property{
		node:  node{pos: pos},
		Name:  name,
		Value: val,
	}, nil
}

// value runs the literal rules selected by the type tag.
func (p *parser) value(typ Type) (Value, error) {
	switch typ {
	case TextType:
		if p.tok != _String {
			return nil, p.pos.Err("expected " + _String.String())
		}
		v := Text(p.lit)
		p.next()
		return v, nil
	case BoolType:
		return p.boolean()
	case IntType:
		n, err := p.integer()
		if err != nil {
			return nil, err
		}
		return Int(n), nil
	case RealType:
		f, err := p.real()
		if err != nil {
			return nil, err
		}
		return Real(f), nil
	case Vec2Type:
		var v Vec2
		if err := p.reals(v[:]); err != nil {
			return nil, err
		}
		return v, nil
	case Vec3Type:
		var v Vec3
		if err := p.reals(v[:]); err != nil {
			return nil, err
		}
		return v, nil
	case Vec4Type:
		var v Vec4
		if err := p.reals(v[:]); err != nil {
			return nil, err
		}
		return v, nil
	case ColorType:
		var v Color
		if err := p.ints(v[:]); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, p.pos.Err("unknown property type")
}

func (p *parser) boolean() (Value, error) {
	if p.tok == _Name {
		switch p.lit {
		case "true", "yes":
			p.next()
			return Bool(true), nil
		case "false", "no":
			p.next()
			return Bool(false), nil
		}
	}
	return nil, p.pos.Err("expected boolean")
}

func (p *parser) integer() (int32, error) {
	if p.tok != _Number {
		return 0, p.pos.Err("expected integer")
	}

	n, err := strconv.ParseInt(p.lit, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.pos.Err("integer out of range: " + p.lit)
		}
		return 0, p.pos.Err("malformed integer: " + p.lit)
	}
	p.next()
	return int32(n), nil
}

func (p *parser) real() (float32, error) {
	if p.tok != _Number {
		return 0, p.pos.Err("expected number")
	}

	f, err := strconv.ParseFloat(p.lit, 32)
	if err != nil {
		return 0, p.pos.Err("malformed number: " + p.lit)
	}
	p.next()
	return float32(f), nil
}

func (p *parser) reals(dst []float32) error {
	for i := range dst {
		if i > 0 && !p.got(_Comma) {
			return p.pos.Err("expected " + _Comma.String())
		}

		f, err := p.real()
		if err != nil {
			return err
		}
		dst[i] = f
	}
	return nil
}

func (p *parser) ints(dst []int32) error {
	for i := range dst {
		if i > 0 && !p.got(_Comma) {
			return p.pos.Err("expected " + _Comma.String())
		}

		n, err := p.integer()
		if err != nil {
			return err
		}
		dst[i] = n
	}
	return nil
}
