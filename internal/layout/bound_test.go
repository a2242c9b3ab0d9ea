package layout

import "testing"

func TestStacking(t *testing.T) {
	a := Bound{Height: 3, Width: 10}
	b := Bound{Height: 5, Width: 4}

	if got, want := StackVertical(a, b), (Bound{Height: 8, Width: 10}); got != want {
		t.Errorf("StackVertical() = %+v, want %+v", got, want)
	}
	if got, want := StackHorizontal(a, b), (Bound{Height: 5, Width: 14}); got != want {
		t.Errorf("StackHorizontal() = %+v, want %+v", got, want)
	}
	if got := StackVertical(); got != (Bound{}) {
		t.Errorf("StackVertical() of nothing = %+v, want zero", got)
	}
}

func TestBoundsRequired(t *testing.T) {
	b := Bounds{
		Min: Bound{Height: 4, Width: 2},
		Rec: Bound{Height: 2, Width: 9},
	}
	if got, want := b.Required(), (Bound{Height: 4, Width: 9}); got != want {
		t.Errorf("Required() = %+v, want %+v", got, want)
	}

	wider := b.Max(Bounds{Min: Bound{Height: 1, Width: 6}, Rec: Bound{Height: 3, Width: 1}})
	want := Bounds{Min: Bound{Height: 4, Width: 6}, Rec: Bound{Height: 3, Width: 9}}
	if wider != want {
		t.Errorf("Max() = %+v, want %+v", wider, want)
	}
}
