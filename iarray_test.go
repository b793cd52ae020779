package iarray

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// The capability interfaces must be usable through the aliases.
var (
	_ Querier[int]  = (*Array[int])(nil)
	_ Deriver[int]  = (*Array[int])(nil)
	_ Mutator[int]  = (*Array[int])(nil)
	_ Editor[int]   = (*Array[int])(nil)
	_ Sequence[int] = (*Array[int])(nil)
	_ Freezable     = (*Array[string])(nil)
)

func TestPublicSurface(t *testing.T) {
	t.Parallel()

	for _, p := range []Policy{None, Shallow, Deep} {
		a := New([]int{5, 6, 7, 8, 9, 10}, WithPolicy(p))

		r := a.Rm(8)
		if diff := pretty.Compare([]int{5, 6, 7, 9, 10}, r.Array().ToArray()); diff != "" {
			t.Errorf("TestPublicSurface(%s): Rm -want/+got:\n%s", p, diff)
		}
		if v, ok := r.Ret(); v != 8 || !ok {
			t.Errorf("TestPublicSurface(%s): Rm Ret() = (%d, %v), want (8, true)", p, v, ok)
		}

		var seq Sequence[int] = a
		if got := seq.Slice(1, End).Len(); got != 5 {
			t.Errorf("TestPublicSurface(%s): Slice(1, End).Len() = %d, want 5", p, got)
		}
		if got := Fold(a, 0, func(acc, _ int, v int) int { return acc + v }); got != 45 {
			t.Errorf("TestPublicSurface(%s): Fold() = %d, want 45", p, got)
		}

		err := a.Put(0, 1)
		if p == None && err != nil {
			t.Errorf("TestPublicSurface(%s): Put(): %s", p, err)
		}
		if p != None && !errors.Is(err, ErrFrozen) {
			t.Errorf("TestPublicSurface(%s): Put(): got err %v, want ErrFrozen", p, err)
		}
	}

	if !IsWrapper(From(Of("a"))) || IsWrapper([]string{"a"}) {
		t.Errorf("TestPublicSurface: IsWrapper() gave the wrong answer")
	}
	if _, err := ParsePolicy("deep"); err != nil {
		t.Errorf("TestPublicSurface: ParsePolicy(deep): %s", err)
	}
	if _, err := Of(1).Set(-1, 0); !errors.Is(err, ErrRange) {
		t.Errorf("TestPublicSurface: Set(-1): got err %v, want ErrRange", err)
	}
	if _, err := Of(1).Concat("x"); !errors.Is(err, ErrArgument) {
		t.Errorf("TestPublicSurface: Concat(\"x\"): got err %v, want ErrArgument", err)
	}
}
