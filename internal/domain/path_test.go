package domain

import "testing"

func TestPathString(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{name: "empty path is root", path: Path{}, want: "$"},
		{name: "nil path is root", path: nil, want: "$"},
		{name: "single key", path: Path{Key("customer")}, want: `$["customer"]`},
		{name: "single index", path: Path{Index(0)}, want: "$[0]"},
		{name: "mixed segments", path: Path{Key("a"), Index(0), Key("b")}, want: `$["a"][0]["b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Path
		wantErr bool
	}{
		{name: "root", input: "$", want: Path{}},
		{name: "key", input: `$["user"]`, want: Path{Key("user")}},
		{name: "index", input: "$[2]", want: Path{Index(2)}},
		{name: "mixed", input: `$["a"][0]["b"]`, want: Path{Key("a"), Index(0), Key("b")}},
		{name: "missing dollar", input: `["a"]`, wantErr: true},
		{name: "unterminated", input: `$["a"`, wantErr: true},
		{name: "negative index", input: "$[-1]", wantErr: true},
		{name: "garbage segment", input: "$[abc]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d segments, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for _, s := range []string{"$", `$["customer"]`, `$["a"][0]["b"]`, "$[10][3]"} {
		p, err := ParsePath(s)
		if err != nil {
			t.Fatalf("ParsePath(%q): %v", s, err)
		}
		if got := p.String(); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}

func mustParse(t *testing.T, text string) Value {
	t.Helper()
	v, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return v
}

func TestResolve(t *testing.T) {
	doc := mustParse(t, `{"user":{"name":"Bob","tags":["x","y"]},"count":3,"5":true}`)

	tests := []struct {
		name  string
		path  Path
		want  Value
		found bool
	}{
		{name: "root", path: nil, want: doc, found: true},
		{name: "object key", path: Path{Key("count")}, want: Int(3), found: true},
		{name: "nested key", path: Path{Key("user"), Key("name")}, want: String("Bob"), found: true},
		{name: "array index", path: Path{Key("user"), Key("tags"), Index(1)}, want: String("y"), found: true},
		{name: "index on object uses decimal key", path: Path{Index(5)}, want: Bool(true), found: true},
		{name: "missing key", path: Path{Key("nope")}, found: false},
		{name: "index out of range", path: Path{Key("user"), Key("tags"), Index(9)}, found: false},
		{name: "key on array", path: Path{Key("user"), Key("tags"), Key("first")}, found: false},
		{name: "descend into primitive", path: Path{Key("count"), Key("x")}, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(doc, tt.path)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if tt.found && !got.Equal(tt.want) {
				t.Errorf("Resolve(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteEmptyPathReplacesDocument(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	v := String("whole")
	if got := Write(doc, nil, v); !got.Equal(v) {
		t.Errorf("Write with empty path = %v, want %v", got, v)
	}
}

func TestWriteThenResolveRoundTrip(t *testing.T) {
	doc := mustParse(t, `{"user":{"name":"Bob","tags":["x"]}}`)
	path := Path{Key("user"), Key("name")}

	current, ok := Resolve(doc, path)
	if !ok {
		t.Fatal("path did not resolve")
	}
	out := Write(doc, path, current)
	if !out.Equal(doc) {
		t.Errorf("writing the resolved value back changed the document: %v", out)
	}
}

func TestWriteDoesNotMutateInput(t *testing.T) {
	doc := mustParse(t, `{"user":{"name":"Bob"},"tags":["x"]}`)
	before, err := Serialize(doc)
	if err != nil {
		t.Fatal(err)
	}

	Write(doc, Path{Key("user"), Key("name")}, String("Alice"))
	Write(doc, Path{Key("tags"), Index(0)}, String("z"))
	Write(doc, Path{Key("tags"), Index(5)}, String("far"))

	after, err := Serialize(doc)
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Errorf("input document mutated:\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestWriteSharesSiblings(t *testing.T) {
	doc := mustParse(t, `{"user":{"name":"Bob"},"other":{"x":1},"list":[1,2]}`)
	out := Write(doc, Path{Key("user"), Key("name")}, String("Alice"))

	// Containers off the path keep referential identity.
	origOther, _ := doc.Field("other")
	newOther, _ := out.Field("other")
	if origOther.fields != newOther.fields {
		t.Error("sibling object was copied instead of shared")
	}
	origList, _ := doc.Field("list")
	newList, _ := out.Field("list")
	if &origList.items[0] != &newList.items[0] {
		t.Error("sibling array was copied instead of shared")
	}

	// Containers on the path must be fresh copies.
	origUser, _ := doc.Field("user")
	newUser, _ := out.Field("user")
	if origUser.fields == newUser.fields {
		t.Error("edited container shares storage with the input")
	}
	if doc.fields == out.fields {
		t.Error("root shares storage with the input")
	}
}

func TestWriteCreatesIntermediates(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path Path
		val  Value
		want string
	}{
		{
			name: "missing object chain",
			doc:  `{}`,
			path: Path{Key("a"), Key("b")},
			val:  Int(1),
			want: `{"a":{"b":1}}`,
		},
		{
			name: "array created when next segment is an index",
			doc:  `{}`,
			path: Path{Key("a"), Index(1)},
			val:  String("x"),
			want: `{"a":[null,"x"]}`,
		},
		{
			name: "object created when next segment is a key",
			doc:  `[]`,
			path: Path{Index(0), Key("k")},
			val:  Bool(true),
			want: `[{"k":true}]`,
		},
		{
			name: "grow existing array with nulls",
			doc:  `{"a":[1]}`,
			path: Path{Key("a"), Index(3)},
			val:  Int(9),
			want: `{"a":[1,null,null,9]}`,
		},
		{
			name: "replace primitive intermediate",
			doc:  `{"a":5}`,
			path: Path{Key("a"), Key("b")},
			val:  Int(2),
			want: `{"a":{"b":2}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.doc)
			got := Write(doc, tt.path, tt.val)
			want := mustParse(t, tt.want)
			if !got.Equal(want) {
				gs, _ := Serialize(got)
				t.Errorf("Write produced %s, want %s", gs, tt.want)
			}
		})
	}
}
