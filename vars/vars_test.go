package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if n := FirstNonZero(0, 0, 3, 4); n != 3 {
		t.Fatalf("got %d", n)
	}
	if s := FirstNonZero("", ""); s != "" {
		t.Fatalf("got %q", s)
	}
	if n := FirstNonZero[int](); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestDerefOrZero(t *testing.T) {
	if n := DerefOrZero[int](nil); n != 0 {
		t.Fatalf("got %d", n)
	}
	n := 42
	if got := DerefOrZero(&n); got != 42 {
		t.Fatalf("got %d", got)
	}
}

func TestParseBool(t *testing.T) {
	for str, want := range map[string]bool{
		"true": true,
		"Yes":  true,
		"on":   true,
		"1":    true,
		"F":    false,
		"off":  false,
		" no ": false,
	} {
		got, err := ParseBool(str)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%q: got %v", str, got)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatal("should fail")
	}
}
