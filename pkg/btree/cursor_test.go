// pkg/btree/cursor_test.go
package btree

import "testing"

func TestCursorForwardTraversal(t *testing.T) {
	m, _ := New[int, int](4)
	for i := 0; i < 10; i++ {
		m.Insert(i, i*i)
	}

	c := m.Cursor()
	c.First()
	var got []int
	for c.Valid() {
		got = append(got, c.Key())
		c.Next()
	}
	if len(got) != 10 {
		t.Fatalf("len(got) = %d, want 10", len(got))
	}
	for i, k := range got {
		if k != i {
			t.Fatalf("got[%d] = %d, want %d", i, k, i)
		}
	}
}

func TestCursorBackwardTraversal(t *testing.T) {
	m, _ := New[int, int](4)
	for i := 0; i < 10; i++ {
		m.Insert(i, i)
	}

	c := m.Cursor()
	c.Last()
	var got []int
	for c.Valid() {
		got = append(got, c.Key())
		c.Prev()
	}
	for i, k := range got {
		want := 9 - i
		if k != want {
			t.Fatalf("got[%d] = %d, want %d", i, k, want)
		}
	}
}

func TestCursorSeek(t *testing.T) {
	m, _ := New[int, string](4)
	for _, k := range []int{2, 4, 6, 8, 10} {
		m.Insert(k, "v")
	}

	c := m.Cursor()
	c.Seek(5)
	if !c.Valid() || c.Key() != 6 {
		t.Fatalf("Seek(5) landed on %d, want 6", c.Key())
	}

	c.Seek(6)
	if !c.Valid() || c.Key() != 6 {
		t.Fatalf("Seek(6) landed on %d, want 6", c.Key())
	}

	c.Seek(11)
	if c.Valid() {
		t.Fatalf("Seek(11) should be invalid, landed on %d", c.Key())
	}
}

func TestCursorOnEmptyTree(t *testing.T) {
	m, _ := New[int, string](4)
	c := m.Cursor()
	c.First()
	if c.Valid() {
		t.Fatal("First() on empty tree should be invalid")
	}
	c.Last()
	if c.Valid() {
		t.Fatal("Last() on empty tree should be invalid")
	}
}

func TestCursorValueMatchesKey(t *testing.T) {
	m, _ := New[int, int](4)
	for i := 0; i < 20; i++ {
		m.Insert(i, i*10)
	}
	c := m.Cursor()
	c.Seek(7)
	if !c.Valid() || c.Value() != 70 {
		t.Fatalf("Value() = %d, want 70", c.Value())
	}
}
