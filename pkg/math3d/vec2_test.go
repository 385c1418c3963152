package math3d

import "testing"

func TestVec2AddSub(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, 4)
	if got := a.Add(b); got != V2(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := b.Sub(a); got != V2(2, 2) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
}

func TestVec2Dot(t *testing.T) {
	a := V2(1, 0)
	b := V2(0, 1)
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := V2(0, 0)
	b := V2(10, 20)
	if got := a.Lerp(b, 0.5); got != V2(5, 10) {
		t.Errorf("Lerp = %v, want (5,10)", got)
	}
}
