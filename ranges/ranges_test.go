package ranges

import "testing"

func TestFull(t *testing.T) {
	var f Int8Full
	if f.Min() != -128 || f.Max() != 127 {
		t.Errorf("Int8Full = [%d,%d], want [-128,127]", f.Min(), f.Max())
	}
	var u UInt16Full
	if u.Min() != 0 || u.Max() != 65535 {
		t.Errorf("UInt16Full = [%d,%d], want [0,65535]", u.Min(), u.Max())
	}
}

func TestNonNegative(t *testing.T) {
	var n NonNegative[int32]
	if n.Min() != 0 {
		t.Errorf("NonNegative.Min() = %d, want 0", n.Min())
	}
	if n.Max() != 1<<31-1 {
		t.Errorf("NonNegative[int32].Max() = %d, want %d", n.Max(), int32(1<<31-1))
	}
}

func TestNamedRanges(t *testing.T) {
	var p Percent
	if p.Min() != 0 || p.Max() != 100 {
		t.Errorf("Percent = [%d,%d], want [0,100]", p.Min(), p.Max())
	}
	var port Port
	if port.Min() != 0 || port.Max() != 65535 {
		t.Errorf("Port = [%d,%d], want [0,65535]", port.Min(), port.Max())
	}
	var day DayOfMonth
	if day.Min() != 1 || day.Max() != 31 {
		t.Errorf("DayOfMonth = [%d,%d], want [1,31]", day.Min(), day.Max())
	}
	var sb SignedByte
	if sb.Min() != -128 || sb.Max() != 127 {
		t.Errorf("SignedByte = [%d,%d], want [-128,127]", sb.Min(), sb.Max())
	}
	var by Byte
	if by.Min() != 0 || by.Max() != 255 {
		t.Errorf("Byte = [%d,%d], want [0,255]", by.Min(), by.Max())
	}
}
