package blk

import (
	"io"
	"strconv"
	"strings"
)

const indent = "    "

// Emit writes the canonical text form of c to w, one entry per line with
// four-space indentation per nesting level. Output is written incrementally,
// the first write error aborts the rest and is returned unchanged. Entries
// already written stay in the sink.
//
// Emit is a canonicalizer, not a byte-preserving rewriter. Booleans render
// as yes/no regardless of their input spelling, separators become newlines,
// and reals use the shortest representation that round-trips at 32 bits.
// Text values are written between bare quotes with no escaping, so a string
// containing '"' will not survive a round trip.
func Emit(w io.Writer, c *Config) error {
	e := emitter{w: w}
	e.block(c.Block, 0)
	return e.err
}

// Format returns the canonical text form of c. The same document always
// formats to the same bytes.
func Format(c *Config) string {
	var sb strings.Builder

	Emit(&sb, c)
	return sb.String()
}

type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) write(s string) {
	if e.err == nil {
		_, e.err = io.WriteString(e.w, s)
	}
}

func (e *emitter) block(b *Block, depth int) {
	for _, ent := range b.Entries {
		e.write(strings.Repeat(indent, depth))

		switch ent := ent.(type) {
		case *Section:
			e.write(ent.Name)
			e.write("{\n")
			e.block(ent.Block, depth+1)
			e.write(strings.Repeat(indent, depth))
			e.write("}\n")
		case *Property:
			e.write(ent.Name)
			e.write(":")
			e.value(ent.Value)
			e.write("\n")
		}
	}
}

func (e *emitter) value(v Value) {
	switch v := v.(type) {
	case Text:
		e.write(`t="` + string(v) + `"`)
	case Bool:
		if v {
			e.write("b=yes")
		} else {
			e.write("b=no")
		}
	case Int:
		e.write("i=" + strconv.FormatInt(int64(v), 10))
	case Real:
		e.write("r=" + formatReal(float32(v)))
	case Vec2:
		e.write("p2=")
		e.reals(v[:])
	case Vec3:
		e.write("p3=")
		e.reals(v[:])
	case Vec4:
		e.write("p4=")
		e.reals(v[:])
	case Color:
		e.write("c=")
		for i, n := range v {
			if i > 0 {
				e.write(", ")
			}
			e.write(strconv.FormatInt(int64(n), 10))
		}
	}
}

func (e *emitter) reals(vals []float32) {
	for i, f := range vals {
		if i > 0 {
			e.write(", ")
		}
		e.write(formatReal(f))
	}
}

func formatReal(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
