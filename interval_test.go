package safenum

import "testing"

func TestIntervalBasics(t *testing.T) {
	i := NewInterval[int8](-10, 10)
	if !i.Includes(Point[int8](5)) {
		t.Error("[-10,10] should include point 5")
	}
	if i.Includes(Point[int8](20)) {
		t.Error("[-10,10] should not include point 20")
	}
	if !i.ContainsZero() {
		t.Error("[-10,10] should contain zero")
	}
	if NewInterval[int8](1, 10).ContainsZero() {
		t.Error("[1,10] should not contain zero")
	}
}

func TestNewIntervalPanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on inverted interval")
		}
	}()
	NewInterval[int8](10, -10)
}

func TestIntervalOrdering(t *testing.T) {
	a := NewInterval[int16](0, 10)
	b := NewInterval[int16](100, 200)
	if a.LessThan(b) != True {
		t.Errorf("[0,10] < [100,200] = %v, want True", a.LessThan(b))
	}
	if b.GreaterThan(a) != True {
		t.Errorf("[100,200] > [0,10] = %v, want True", b.GreaterThan(a))
	}
	c := NewInterval[int16](5, 150)
	if a.LessThan(c) != Indeterminate {
		t.Errorf("[0,10] < [5,150] = %v, want Indeterminate", a.LessThan(c))
	}
}

func TestIntervalEqual(t *testing.T) {
	p1 := Point[int16](5)
	p2 := Point[int16](5)
	if p1.Equal(p2) != True {
		t.Errorf("Point(5) == Point(5) = %v, want True", p1.Equal(p2))
	}
	p3 := Point[int16](6)
	if p1.Equal(p3) != False {
		t.Errorf("Point(5) == Point(6) = %v, want False", p1.Equal(p3))
	}
	wide := NewInterval[int16](0, 10)
	if p1.Equal(wide) != Indeterminate {
		t.Errorf("Point(5) == [0,10] = %v, want Indeterminate", p1.Equal(wide))
	}
}

func TestAddIntervalFast(t *testing.T) {
	a := NewInterval[int8](0, 50)
	b := NewInterval[int8](0, 50)
	r := AddInterval(a, b)
	if r.IsFault() {
		t.Fatalf("AddInterval([0,50],[0,50]) unexpectedly faulted: %+v", r)
	}
	if r.Value() != NewInterval[int8](0, 100) {
		t.Errorf("AddInterval([0,50],[0,50]) = %+v, want [0,100]", r.Value())
	}
}

func TestAddIntervalOverflowReachable(t *testing.T) {
	a := NewInterval[int8](0, 100)
	r := AddInterval(a, a)
	if !r.IsFault() {
		t.Fatalf("AddInterval([0,100],[0,100]) should prove overflow reachable, got %+v", r.Value())
	}
}

func TestMulIntervalFourCorners(t *testing.T) {
	a := NewInterval[int16](-5, 3)
	b := NewInterval[int16](-2, 10)
	r := MulInterval(a, b)
	if r.IsFault() {
		t.Fatalf("MulInterval unexpectedly faulted: %+v", r)
	}
	// Corners: -5*-2=10, -5*10=-50, 3*-2=-6, 3*10=30 -> [-50,30]
	if got := r.Value(); got.L != -50 || got.U != 30 {
		t.Errorf("MulInterval([-5,3],[-2,10]) = [%d,%d], want [-50,30]", got.L, got.U)
	}
}

func TestDivIntervalZeroDivisor(t *testing.T) {
	a := NewInterval[int16](0, 10)
	b := NewInterval[int16](-1, 1)
	r := DivInterval(a, b)
	if r.Fault() != DivideByZero {
		t.Errorf("DivInterval with zero-containing divisor fault = %v, want DivideByZero", r.Fault())
	}
}

func TestModIntervalUnsigned(t *testing.T) {
	a := NewInterval[uint8](0, 255)
	b := NewInterval[uint8](1, 10)
	r := ModInterval(a, b)
	if r.IsFault() {
		t.Fatalf("ModInterval unexpectedly faulted: %+v", r)
	}
	if got := r.Value(); got.L != 0 || got.U != 9 {
		t.Errorf("ModInterval unsigned = [%d,%d], want [0,9]", got.L, got.U)
	}
}

func TestShlIntervalDomain(t *testing.T) {
	a := NewInterval[uint8](0, 3)
	shiftTooWide := NewInterval[int](0, 8)
	if r := ShlInterval(a, shiftTooWide); r.Fault() != DomainError {
		t.Errorf("ShlInterval with out-of-range shift fault = %v, want DomainError", r.Fault())
	}
	shiftOk := NewInterval[int](0, 2)
	r := ShlInterval(a, shiftOk)
	if r.IsFault() {
		t.Fatalf("ShlInterval unexpectedly faulted: %+v", r)
	}
}

func TestOrAndXorIntervalRejectSigned(t *testing.T) {
	a := NewInterval[int8](0, 10)
	if r := OrInterval(a, a); r.Fault() != DomainError {
		t.Errorf("OrInterval signed fault = %v, want DomainError", r.Fault())
	}
	if r := AndInterval(a, a); r.Fault() != DomainError {
		t.Errorf("AndInterval signed fault = %v, want DomainError", r.Fault())
	}
	if r := XorInterval(a, a); r.Fault() != DomainError {
		t.Errorf("XorInterval signed fault = %v, want DomainError", r.Fault())
	}
}

func TestAndIntervalUnsigned(t *testing.T) {
	a := NewInterval[uint8](0, 15)
	b := NewInterval[uint8](0, 7)
	r := AndInterval(a, b)
	if r.IsFault() || r.Value().U != 7 {
		t.Errorf("AndInterval([0,15],[0,7]) = %+v, want upper bound 7", r)
	}
}
