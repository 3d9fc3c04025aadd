package blk

import "testing"

func Test_Scan(t *testing.T) {
	type tk struct {
		tok token
		lit string
	}

	tests := []struct {
		input string
		toks  []tk
	}{
		{
			"a:i=1;",
			[]tk{{_Name, "a"}, {_Colon, ""}, {_Name, "i"}, {_Assign, ""}, {_Number, "1"}, {_Semi, ""}},
		},
		{
			`name:t="hello world"` + "\n",
			[]tk{{_Name, "name"}, {_Colon, ""}, {_Name, "t"}, {_Assign, ""}, {_String, "hello world"}, {_Semi, ""}},
		},
		{
			"s{a:b=yes}",
			[]tk{
				{_Name, "s"}, {_Lbrace, ""}, {_Name, "a"}, {_Colon, ""}, {_Name, "b"},
				{_Assign, ""}, {_Name, "yes"}, {_Rbrace, ""},
			},
		},
		{
			// A newline after a comma is whitespace, not a separator.
			"v:p2=1,\n2\n",
			[]tk{
				{_Name, "v"}, {_Colon, ""}, {_Name, "p2"}, {_Assign, ""},
				{_Number, "1"}, {_Comma, ""}, {_Number, "2"}, {_Semi, ""},
			},
		},
		{
			// Signs and exponents only begin numbers in value position.
			"x:r=-1.5e+3;",
			[]tk{{_Name, "x"}, {_Colon, ""}, {_Name, "r"}, {_Assign, ""}, {_Number, "-1.5e+3"}, {_Semi, ""}},
		},
		{
			// Identifiers may be all digits.
			"123:i=5;",
			[]tk{{_Name, "123"}, {_Colon, ""}, {_Name, "i"}, {_Assign, ""}, {_Number, "5"}, {_Semi, ""}},
		},
		{
			// Blank lines collapse into the surrounding whitespace.
			"a:i=1\n\n\nb:i=2\n",
			[]tk{
				{_Name, "a"}, {_Colon, ""}, {_Name, "i"}, {_Assign, ""}, {_Number, "1"}, {_Semi, ""},
				{_Name, "b"}, {_Colon, ""}, {_Name, "i"}, {_Assign, ""}, {_Number, "2"}, {_Semi, ""},
			},
		},
		{
			"@",
			[]tk{{_Bad, "@"}},
		},
	}

	for _, test := range tests {
		sc := newScanner(newSource("test.blk", test.input))

		for i, expected := range test.toks {
			if sc.tok != expected.tok {
				t.Errorf("%q - unexpected token %d, expected=%q, got=%q\n", test.input, i, expected.tok, sc.tok)
				break
			}

			if expected.lit != "" && sc.lit != expected.lit {
				t.Errorf("%q - unexpected literal %d, expected=%q, got=%q\n", test.input, i, expected.lit, sc.lit)
			}
			sc.next()
		}

		if sc.tok != _EOF {
			t.Errorf("%q - expected %q at end, got=%q\n", test.input, _EOF, sc.tok)
		}
	}
}

func Test_ScanPos(t *testing.T) {
	sc := newScanner(newSource("test.blk", "a:i=1\nfoo:i=2\n"))

	for sc.tok != _EOF && sc.lit != "foo" {
		sc.next()
	}

	if sc.pos.Line != 2 || sc.pos.Col != 1 {
		t.Errorf("unexpected pos, expected=2:1, got=%d:%d\n", sc.pos.Line, sc.pos.Col)
	}

	if sc.pos.Off != 6 {
		t.Errorf("unexpected offset, expected=6, got=%d\n", sc.pos.Off)
	}
}
