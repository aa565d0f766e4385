package safenum

import "testing"

type percentRange struct{}

func (percentRange) Min() int8 { return 0 }
func (percentRange) Max() int8 { return 100 }

type wideRange struct{}

func (wideRange) Min() int16 { return -1000 }
func (wideRange) Max() int16 { return 1000 }

type disjointRange struct{}

func (disjointRange) Min() int16 { return 500 }
func (disjointRange) Max() int16 { return 600 }

type ignoringPolicy struct{}

func (ignoringPolicy) OverflowError(string) {}
func (ignoringPolicy) UnderflowError(string) {}
func (ignoringPolicy) RangeError(string) {}
func (ignoringPolicy) DomainError(string) {}
func (ignoringPolicy) ArithmeticError(string) {}
func (ignoringPolicy) ImplementationDefinedError(string) {}

type nativePromo struct{}

func (nativePromo) Name() string { return "native" }

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New[int8, percentRange, nativePromo, ignoringPolicy](127)
	if err == nil {
		t.Fatal("expected error constructing 127 into [0,100]")
	}
}

func TestNewLeavesMinOnFailure(t *testing.T) {
	s, err := New[int8, percentRange, nativePromo, ignoringPolicy](127)
	if err == nil {
		t.Fatal("expected error")
	}
	if s.Get() != 0 {
		t.Errorf("Get() after failed New = %d, want Min() = 0", s.Get())
	}
}

func TestNewAccepts(t *testing.T) {
	s, err := New[int8, percentRange, nativePromo, ignoringPolicy](42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Get() != 42 {
		t.Errorf("Get() = %d, want 42", s.Get())
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustNew[int8, percentRange, nativePromo, ignoringPolicy](127)
}

func TestRangeReportsBounds(t *testing.T) {
	s := MustNew[int8, percentRange, nativePromo, ignoringPolicy](10)
	min, max := s.Range()
	if min != 0 || max != 100 {
		t.Errorf("Range() = [%d,%d], want [0,100]", min, max)
	}
}

func TestFromSafeWideningUnchecked(t *testing.T) {
	src := MustNew[int8, percentRange, nativePromo, ignoringPolicy](42)
	dst, err := FromSafe[int16, int8, wideRange, percentRange, nativePromo, ignoringPolicy](src)
	if err != nil {
		t.Fatalf("unexpected error widening into a superset range: %v", err)
	}
	if dst.Get() != 42 {
		t.Errorf("Get() = %d, want 42", dst.Get())
	}
}

func TestFromSafeDisjointIsLogicError(t *testing.T) {
	src := MustNew[int8, percentRange, nativePromo, ignoringPolicy](42)
	_, err := FromSafe[int16, int8, disjointRange, percentRange, nativePromo, ignoringPolicy](src)
	if err == nil {
		t.Fatal("expected LogicError converting into a disjoint range")
	}
}

func TestAssignCopiesValue(t *testing.T) {
	a := MustNew[int8, percentRange, nativePromo, ignoringPolicy](10)
	b := MustNew[int8, percentRange, nativePromo, ignoringPolicy](20)
	a.Assign(b)
	if a.Get() != 20 {
		t.Errorf("Assign: Get() = %d, want 20", a.Get())
	}
}

func TestCastToOutOfRange(t *testing.T) {
	s := MustNew[int16, wideRange, nativePromo, ignoringPolicy](1000)
	_, err := CastTo[int8](s)
	if err == nil {
		t.Fatal("expected error casting 1000 into int8")
	}
}

func TestCastToInRange(t *testing.T) {
	s := MustNew[int16, wideRange, nativePromo, ignoringPolicy](42)
	v, err := CastTo[int8](s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("CastTo = %d, want 42", v)
	}
}
