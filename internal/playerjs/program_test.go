package playerjs

import "testing"

func TestProgramApply_OrderSensitive(t *testing.T) {
	input := "ABCDEFG"

	swapSpliceReverse := Program{
		{Kind: OpSwapFirst, Arg: 2},
		{Kind: OpSplice, Arg: 3},
		{Kind: OpReverse},
	}
	spliceSwapReverse := Program{
		{Kind: OpSplice, Arg: 3},
		{Kind: OpSwapFirst, Arg: 2},
		{Kind: OpReverse},
	}

	got1 := string(swapSpliceReverse.Apply([]byte(input)))
	got2 := string(spliceSwapReverse.Apply([]byte(input)))

	if got1 != "GFED" {
		t.Fatalf("Apply() = %q, want %q", got1, "GFED")
	}
	if got2 != "GDEF" {
		t.Fatalf("Apply() = %q, want %q", got2, "GDEF")
	}
	if got1 == got2 {
		t.Fatalf("reordered programs produced identical output %q", got1)
	}
}

func TestProgramApply_Deterministic(t *testing.T) {
	p := Program{
		{Kind: OpReverse},
		{Kind: OpSplice, Arg: 2},
		{Kind: OpSwapFirst, Arg: 5},
	}
	first := string(p.Apply([]byte("0123456789")))
	for i := 0; i < 10; i++ {
		if got := string(p.Apply([]byte("0123456789"))); got != first {
			t.Fatalf("Apply() run %d = %q, want %q", i, got, first)
		}
	}
}

func TestProgramApply_DoesNotMutateInput(t *testing.T) {
	input := []byte("ABCDEF")
	p := Program{{Kind: OpReverse}, {Kind: OpSwapFirst, Arg: 3}}
	_ = p.Apply(input)
	if string(input) != "ABCDEF" {
		t.Fatalf("input mutated to %q", string(input))
	}
}

func TestProgramApply_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		prog  Program
		input string
		want  string
	}{
		{name: "swap wraps modulo length", prog: Program{{Kind: OpSwapFirst, Arg: 8}}, input: "abcdef", want: "cbadef"},
		{name: "swap index zero", prog: Program{{Kind: OpSwapFirst, Arg: 0}}, input: "abc", want: "abc"},
		{name: "splice whole string", prog: Program{{Kind: OpSplice, Arg: 3}}, input: "abc", want: ""},
		{name: "splice beyond length empties", prog: Program{{Kind: OpSplice, Arg: 9}}, input: "abc", want: ""},
		{name: "empty program", prog: Program{}, input: "abc", want: "abc"},
		{name: "empty input", prog: Program{{Kind: OpReverse}, {Kind: OpSwapFirst, Arg: 2}}, input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(tt.prog.Apply([]byte(tt.input))); got != tt.want {
				t.Fatalf("Apply(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
