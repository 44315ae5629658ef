package material

import "testing"

func TestLookup(t *testing.T) {
	m, err := Lookup("carbon steel")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if m.CTE != 11.7 || m.Youngs != 210_000 {
		t.Errorf("unexpected carbon steel properties: %+v", m)
	}

	if _, err := Lookup("unobtainium"); err == nil {
		t.Error("expected a not-found error")
	}
}

func TestBuiltinsHaveReferenceTemp(t *testing.T) {
	for _, m := range Builtins() {
		if m.Temp != ReferenceTemp {
			t.Errorf("%s: temp %g, want %g", m.Name, m.Temp, ReferenceTemp)
		}
		if m.CTE <= 0 {
			t.Errorf("%s: non-positive cte %g", m.Name, m.CTE)
		}
	}
}

func TestLibraryLoadBytes(t *testing.T) {
	src := `
material "Invar 36" {
  cte      = 1.2
  poissons = 0.29
  youngs   = 141000
}

material "Carbon Steel" {
  cte = 12.0
}
`
	lib := NewLibrary()
	before := len(lib.Materials())

	if err := lib.LoadBytes([]byte(src), "test.hcl"); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}

	// One new entry, one shadowed built-in.
	if got := len(lib.Materials()); got != before+1 {
		t.Errorf("catalog size %d, want %d", got, before+1)
	}

	invar, err := lib.Lookup("invar 36")
	if err != nil {
		t.Fatalf("Lookup invar: %v", err)
	}
	if invar.CTE != 1.2 || invar.Youngs != 141_000 || invar.Temp != ReferenceTemp {
		t.Errorf("unexpected invar properties: %+v", invar)
	}

	steel, err := lib.Lookup("Carbon Steel")
	if err != nil {
		t.Fatalf("Lookup steel: %v", err)
	}
	if steel.CTE != 12.0 {
		t.Errorf("shadowed carbon steel cte %g, want 12.0", steel.CTE)
	}
}

func TestLibraryLoadBytesErrors(t *testing.T) {
	lib := NewLibrary()

	if err := lib.LoadBytes([]byte(`material "X" {`), "bad.hcl"); err == nil {
		t.Error("expected a parse error")
	}
	if err := lib.LoadBytes([]byte(`material "X" { density = 7.8 }`), "attr.hcl"); err == nil {
		t.Error("expected an unknown-attribute error")
	}
	if err := lib.LoadBytes([]byte(`material "X" { cte = "high" }`), "type.hcl"); err == nil {
		t.Error("expected a type error")
	}
}
