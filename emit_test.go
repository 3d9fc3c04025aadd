package blk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func Test_Format(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"age:i=30;", "age:i=30\n"},
		{"x:r=0.5;", "x:r=0.5\n"},
		{`name:t="uwu";`, "name:t=\"uwu\"\n"},
		{"flag:b=true;", "flag:b=yes\n"},
		{"flag:b=yes;", "flag:b=yes\n"},
		{"flag:b=false;", "flag:b=no\n"},
		{"flag:b=no;", "flag:b=no\n"},
		{"v:p2=1,2;", "v:p2=1, 2\n"},
		{"v:p4=0.35, -1, 0.35, 0;", "v:p4=0.35, -1, 0.35, 0\n"},
		{"col:c=255,0,10,128;", "col:c=255, 0, 10, 128\n"},
		{"neg:i=-17;", "neg:i=-17\n"},
		{"plus:i=+10000;", "plus:i=10000\n"},
		{
			"meow:t=\"uwu\";uwu{owo:i=32;};",
			"meow:t=\"uwu\"\nuwu{\n    owo:i=32\n}\n",
		},
		{
			"a{b{c:i=1;};};",
			"a{\n    b{\n        c:i=1\n    }\n}\n",
		},
		{"empty{};", "empty{\n}\n"},
	}

	for _, test := range tests {
		if formatted := Format(parse(t, test.input)); formatted != test.expected {
			t.Errorf("%q - unexpected output, expected=%q, got=%q\n", test.input, test.expected, formatted)
		}
	}
}

func Test_FormatConstructed(t *testing.T) {
	c := &Config{
		Block: &Block{
			Entries: []Entry{
				&Property{Name: "x", Value: Real(0.5)},
				&Section{
					Name: "s",
					Block: &Block{
						Entries: []Entry{
							&Property{Name: "ok", Value: Bool(true)},
							&Property{Name: "line", Value: Vec3{1, 2.5, -3}},
						},
					},
				},
			},
		},
	}

	expected := "x:r=0.5\ns{\n    ok:b=yes\n    line:p3=1, 2.5, -3\n}\n"

	if formatted := Format(c); formatted != expected {
		t.Errorf("unexpected output, expected=%q, got=%q\n", expected, formatted)
	}

	// Same tree, same bytes.
	if again := Format(c); again != Format(c) {
		t.Errorf("output differs across invocations, %q != %q\n", again, Format(c))
	}
}

func Test_FormatIdempotent(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("testdata", "controls.blk"))

	if err != nil {
		t.Fatal(err)
	}

	inputs := []string{
		string(b),
		"meow:t=\"uwu\";uwu{owo:i=32;};",
		"a:b=true\nb:b=no;v:p4=0.35,-1,.35,0\nc_:c=1,2,3,4;",
		"    wuu:i=23;    uuw:t=\"UwU\";    ",
	}

	for _, input := range inputs {
		once := Format(parse(t, input))
		twice := Format(parse(t, once))

		if once != twice {
			t.Errorf("%q - canonical form is not a fixed point, %q != %q\n", input, once, twice)
		}
	}
}

type failWriter struct {
	n   int
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func Test_EmitSinkError(t *testing.T) {
	c := parse(t, "a:i=1;s{b:i=2;};")

	errSink := errors.New("sink failed")

	for n := 0; n < 5; n++ {
		err := Emit(&failWriter{n: n, err: errSink}, c)

		if !errors.Is(err, errSink) {
			t.Errorf("n=%d - expected sink error, got %v\n", n, err)
		}
	}

	if err := Emit(&failWriter{n: 1 << 10, err: errSink}, c); err != nil {
		t.Errorf("unexpected error %s\n", err)
	}
}
