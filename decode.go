package blk

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// DecodeError reports a property or section that could not be decoded into
// the field it matched.
type DecodeError struct {
	Pos   Pos
	Name  string
	Field string
	Type  reflect.Type
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("blk: %s - cannot decode %q into field %s of type %s", e.Pos, e.Name, e.Field, e.Type)
}

// Decode parses input as a BLK document and decodes it into v, which must
// be a non-nil pointer to a struct. Any leftover after the document is
// ignored.
func Decode(v any, name, input string) error {
	c, _, err := Parse(name, input)

	if err != nil {
		return err
	}
	return DecodeConfig(v, c)
}

// DecodeConfig decodes a parsed document into v, which must be a non-nil
// pointer to a struct.
//
// Entries match exported fields by the blk struct tag if present, then by
// case-insensitive field name. Fields tagged blk:"-" and entries without a
// matching field are skipped. Sections decode into struct, pointer to
// struct, or slice of struct fields, the slice form collecting duplicate
// sections in document order. Properties decode into fields of the
// corresponding kind: string, bool, signed integers, floats, arrays of 2-4
// floats for vectors, and arrays of 4 integers for colors.
func DecodeConfig(v any, c *Config) error {
	rv := reflect.ValueOf(v)

	if kind := rv.Kind(); kind != reflect.Pointer || rv.IsNil() {
		return errors.New("blk: cannot decode into " + kind.String())
	}

	el := rv.Elem()

	if kind := el.Kind(); kind != reflect.Struct {
		return errors.New("blk: cannot decode into pointer to " + kind.String())
	}

	var d decoder
	return d.block(el, c.Block)
}

type decoder struct{}

func (d *decoder) field(rv reflect.Value, name string) (reflect.Value, string, bool) {
	t := rv.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		if !sf.IsExported() {
			continue
		}

		if tag := sf.Tag.Get("blk"); tag != "" {
			if tag == name {
				return rv.Field(i), sf.Name, true
			}
			continue
		}

		if strings.EqualFold(sf.Name, name) {
			return rv.Field(i), sf.Name, true
		}
	}
	return reflect.Value{}, "", false
}

func (d *decoder) block(rv reflect.Value, b *Block) error {
	for _, ent := range b.Entries {
		switch ent := ent.(type) {
		case *Section:
			if err := d.section(rv, ent); err != nil {
				return err
			}
		case *Property:
			if err := d.property(rv, ent); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *decoder) section(rv reflect.Value, s *Section) error {
	fv, name, ok := d.field(rv, s.Name)

	if !ok {
		return nil
	}

	bad := func() error {
		return &DecodeError{
			Pos:   s.Pos(),
			Name:  s.Name,
			Field: name,
			Type:  fv.Type(),
		}
	}

	switch fv.Kind() {
	case reflect.Struct:
		return d.block(fv, s.Block)
	case reflect.Pointer:
		if fv.Type().Elem().Kind() != reflect.Struct {
			return bad()
		}

		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return d.block(fv.Elem(), s.Block)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.Struct {
			return bad()
		}

		el := reflect.New(fv.Type().Elem()).Elem()

		if err := d.block(el, s.Block); err != nil {
			return err
		}
		fv.Set(reflect.Append(fv, el))
		return nil
	default:
		return bad()
	}
}

func (d *decoder) property(rv reflect.Value, p *Property) error {
	fv, name, ok := d.field(rv, p.Name)

	if !ok {
		return nil
	}

	bad := func() error {
		return &DecodeError{
			Pos:   p.Pos(),
			Name:  p.Name,
			Field: name,
			Type:  fv.Type(),
		}
	}

	switch v := p.Value.(type) {
	case Text:
		if fv.Kind() != reflect.String {
			return bad()
		}
		fv.SetString(string(v))
	case Bool:
		if fv.Kind() != reflect.Bool {
			return bad()
		}
		fv.SetBool(bool(v))
	case Int:
		switch fv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if fv.OverflowInt(int64(v)) {
				return bad()
			}
			fv.SetInt(int64(v))
		default:
			return bad()
		}
	case Real:
		switch fv.Kind() {
		case reflect.Float32, reflect.Float64:
			fv.SetFloat(float64(v))
		default:
			return bad()
		}
	case Vec2:
		return d.floats(fv, v[:], bad)
	case Vec3:
		return d.floats(fv, v[:], bad)
	case Vec4:
		return d.floats(fv, v[:], bad)
	case Color:
		return d.ints(fv, v[:], bad)
	}
	return nil
}

func (d *decoder) floats(fv reflect.Value, vals []float32, bad func() error) error {
	if fv.Kind() != reflect.Array || fv.Len() != len(vals) {
		return bad()
	}

	for i, f := range vals {
		el := fv.Index(i)

		switch el.Kind() {
		case reflect.Float32, reflect.Float64:
			el.SetFloat(float64(f))
		default:
			return bad()
		}
	}
	return nil
}

func (d *decoder) ints(fv reflect.Value, vals []int32, bad func() error) error {
	if fv.Kind() != reflect.Array || fv.Len() != len(vals) {
		return bad()
	}

	for i, n := range vals {
		el := fv.Index(i)

		switch el.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if el.OverflowInt(int64(n)) {
				return bad()
			}
			el.SetInt(int64(n))
		default:
			return bad()
		}
	}
	return nil
}
