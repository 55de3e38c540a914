package eval_test

import (
	"strings"
	"testing"

	"github.com/fathompawn/chesscore/pkg/eval"
)

func TestMatedInPrefersLongerMates(t *testing.T) {
	soon := eval.MatedIn(1)
	later := eval.MatedIn(5)

	if soon >= later {
		t.Fatalf("MatedIn(1) = %d, want less than MatedIn(5) = %d", soon, later)
	}
}

func TestStringFormatsMateAndCentipawns(t *testing.T) {
	tests := []struct {
		e    eval.Eval
		want string
	}{
		{eval.Eval(250), "cp 250"},
		{eval.Eval(-40), "cp -40"},
		{eval.MatedIn(0), "mate -0"},
	}

	for _, test := range tests {
		if got := test.e.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", test.e, got, test.want)
		}
	}

	if got := eval.MatedIn(1).String(); !strings.HasPrefix(got, "mate -") {
		t.Errorf("MatedIn(1).String() = %q, want a losing mate score", got)
	}
}
