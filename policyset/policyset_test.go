package policyset

import "testing"

func TestPromotionNames(t *testing.T) {
	if (Native{}).Name() != "native" {
		t.Error(`Native.Name() should be "native"`)
	}
	if (Widening{}).Name() != "widening" {
		t.Error(`Widening.Name() should be "widening"`)
	}
}

func TestStrictPanics(t *testing.T) {
	tests := []func(){
		func() { (Strict{}).OverflowError("x") },
		func() { (Strict{}).UnderflowError("x") },
		func() { (Strict{}).RangeError("x") },
		func() { (Strict{}).DomainError("x") },
		func() { (Strict{}).ArithmeticError("x") },
		func() { (Strict{}).ImplementationDefinedError("x") },
	}
	for _, fn := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected panic from a Strict hook")
				}
			}()
			fn()
		}()
	}
}

func TestIgnoringNeverPanics(t *testing.T) {
	p := Ignoring{}
	p.OverflowError("x")
	p.UnderflowError("x")
	p.RangeError("x")
	p.DomainError("x")
	p.ArithmeticError("x")
	p.ImplementationDefinedError("x")
}

func TestStickyRecordsAndResets(t *testing.T) {
	ResetSticky()
	if StickyFlags() != 0 {
		t.Fatal("expected clean sticky state after ResetSticky")
	}
	p := Sticky{}
	p.OverflowError("x")
	p.DomainError("y")
	flags := StickyFlags()
	if flags&stickyOverflow == 0 {
		t.Error("expected stickyOverflow flag set")
	}
	if flags&stickyDomain == 0 {
		t.Error("expected stickyDomain flag set")
	}
	if flags&stickyRange != 0 {
		t.Error("stickyRange should not be set")
	}
	ResetSticky()
	if StickyFlags() != 0 {
		t.Error("expected sticky state cleared after ResetSticky")
	}
}
