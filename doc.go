// Package blk parses and serializes BLK, the hierarchical textual
// configuration format some game engines use to store nested trees of
// typed properties.
//
// A BLK document is a sequence of entries terminated by newlines or
// semicolons, freely mixed. An entry is either a section, a name followed
// by a brace-enclosed block of nested entries, or a property, a name
// followed by a type tag and a value:
//
//	cloudsQuality:t="medium"
//	hdClient:b=no
//
//	graphics{
//	    rendinstDistMul:r=0.5
//	    skyQuality:i=2
//	    color:c=255, 255, 255, 128
//	    line:p4=0.35, -1, 0.35, 0
//	}
//
// The type tags are t (text), b (boolean, spelled true/yes/false/no),
// i (32-bit integer), r (32-bit real), p2/p3/p4 (vectors of 2, 3, or 4
// reals), and c (a color of 4 integer channels).
//
// [Parse] produces a [Config] tree that preserves entry order, including
// duplicate names. [Emit] and [Format] render a tree back to canonical
// text: this is deterministic but lossy with respect to the original
// bytes, since separators, boolean spellings, and number formatting are
// normalized, and quoted strings carry no escape syntax. [Decode] maps a
// document onto a Go struct in the manner of encoding/json:
//
//	type Graphics struct {
//	    RendinstDistMul float32
//	    SkyQuality      int
//	    Color           [4]int32
//	    Line            [4]float32 `blk:"line"`
//	}
//
// Parsing is synchronous and allocates the whole tree in memory. Section
// nesting is handled by call-stack recursion, so pathologically deep
// input can exhaust the stack.
package blk
