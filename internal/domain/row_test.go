package domain

import "testing"

func TestRows(t *testing.T) {
	doc := mustParse(t, `{"name":"Bob","meta":{"age":3},"tags":["x"],"active":true}`)
	rows := Rows(doc)

	want := []Row{
		{Key: "name", Kind: RowPrimitive, Value: String("Bob")},
		{Key: "meta", Kind: RowObject},
		{Key: "tags", Kind: RowArray},
		{Key: "active", Kind: RowPrimitive, Value: Bool(true)},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Key != w.Key || rows[i].Kind != w.Kind {
			t.Errorf("row %d = {%q %v}, want {%q %v}", i, rows[i].Key, rows[i].Kind, w.Key, w.Kind)
		}
		if w.Kind == RowPrimitive && !rows[i].Value.Equal(w.Value) {
			t.Errorf("row %d value = %v, want %v", i, rows[i].Value, w.Value)
		}
	}
}

func TestRowsOfArray(t *testing.T) {
	doc := mustParse(t, `[1,{"a":2},"s"]`)
	rows := Rows(doc)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, row := range rows {
		if row.Key != "" {
			t.Errorf("array row %d has key %q, want unkeyed", i, row.Key)
		}
	}
	if rows[0].Kind != RowPrimitive || rows[1].Kind != RowObject || rows[2].Kind != RowPrimitive {
		t.Errorf("row kinds = %v %v %v", rows[0].Kind, rows[1].Kind, rows[2].Kind)
	}
}

func TestRowsToObject(t *testing.T) {
	rows := []Row{
		{Key: "name", Kind: RowPrimitive, Value: String("Bob")},
		{Key: "tags", Kind: RowArray},
		{Key: "meta", Kind: RowObject},
		{Key: "", Kind: RowPrimitive, Value: Int(1)},
		{Key: "age", Kind: RowPrimitive, Value: Int(30)},
	}

	obj := RowsToObject(rows)
	want := mustParse(t, `{"name":"Bob","age":30}`)
	if !obj.Equal(want) {
		got, _ := Serialize(obj)
		t.Errorf("RowsToObject = %s, want {\"name\":\"Bob\",\"age\":30}", got)
	}
}

func TestApplyEdits(t *testing.T) {
	rows := []Row{
		{Key: "name", Kind: RowPrimitive, Value: String("Bob")},
		{Key: "tags", Kind: RowArray},
		{Key: "", Kind: RowPrimitive, Value: Int(7)},
		{Key: "color", Kind: RowPrimitive, Value: String("blue")},
	}
	edits := EditSet{
		{Key: "name", Value: String("Alice")},
		{Key: "tags", Value: String("should not apply")},
		{Key: "color", Value: String("red")},
	}

	got := ApplyEdits(rows, edits)

	if got[0].Value.Str() != "Alice" {
		t.Errorf("name row = %q, want Alice", got[0].Value.Str())
	}
	if got[1].Kind != RowArray || got[1].Value.Kind() != KindNull {
		t.Error("container row was modified by an edit")
	}
	if got[2].Value.Number() != "7" {
		t.Error("unkeyed row was modified")
	}
	if got[3].Value.Str() != "red" {
		t.Errorf("color row = %q, want red", got[3].Value.Str())
	}

	// Input rows untouched.
	if rows[0].Value.Str() != "Bob" || rows[3].Value.Str() != "blue" {
		t.Error("ApplyEdits mutated its input")
	}

	// Row order preserved.
	for i := range rows {
		if got[i].Key != rows[i].Key {
			t.Errorf("row %d key reordered: %q -> %q", i, rows[i].Key, got[i].Key)
		}
	}
}

func TestEditSetGet(t *testing.T) {
	edits := EditSet{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}}

	if v, ok := edits.Get("b"); !ok || v.Number() != "2" {
		t.Errorf("Get(b) = %v, %v", v, ok)
	}
	if _, ok := edits.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}
