package dotbracket

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/TimothyStiles/rnaknot/basepair"
)

func ExampleParse() {
	pairs, _ := Parse("((..))")
	fmt.Println(pairs)
	// Output:
	// [{1 6 } {2 5 }]
}

func TestParseSimpleHairpin(t *testing.T) {
	pairs, err := Parse("(((...)))")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := []basepair.BasePair{{I: 1, J: 9}, {I: 2, J: 8}, {I: 3, J: 7}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Parse(...) = %v, want %v", pairs, want)
	}
}

func TestParsePseudoknotLayers(t *testing.T) {
	// Two independent layers: "(" / "[" cross each other freely.
	pairs, err := Parse("([)]")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := []basepair.BasePair{{I: 1, J: 3}, {I: 2, J: 4}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Parse(([)]) = %v, want %v", pairs, want)
	}
}

func TestParseUnbalanced(t *testing.T) {
	if _, err := Parse("(((...))"); err == nil {
		t.Fatalf("Parse of unbalanced structure should have failed")
	}
}

func TestParseInvalidSymbol(t *testing.T) {
	if _, err := Parse("((Z))"); err == nil {
		t.Fatalf("Parse with invalid symbol should have failed")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	structure := "(((...)))"
	pairs, err := Parse(structure)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got, err := Format(pairs, len(structure))
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if got != structure {
		t.Errorf("Format(Parse(%q)) = %q, want %q", structure, got, structure)
	}
}

func TestFormatRejectsCrossingPairs(t *testing.T) {
	pairs := []basepair.BasePair{{I: 1, J: 3}, {I: 2, J: 4}}
	if _, err := Format(pairs, 4); err == nil {
		t.Fatalf("Format with crossing pairs should have failed")
	}
}

func TestBPSEQRoundTrip(t *testing.T) {
	seq := "GGGAAACCC"
	pairs := []basepair.BasePair{{I: 1, J: 9}, {I: 2, J: 8}, {I: 3, J: 7}}
	lines, err := FormatBPSEQ(seq, pairs, len(seq))
	if err != nil {
		t.Fatalf("FormatBPSEQ returned error: %v", err)
	}
	got, err := ParseBPSEQ(lines)
	if err != nil {
		t.Fatalf("ParseBPSEQ returned error: %v", err)
	}
	want := []basepair.BasePair{{I: 1, J: 9}, {I: 2, J: 8}, {I: 3, J: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseBPSEQ(FormatBPSEQ(...)) = %v, want %v", got, want)
	}
}

func TestParseBPSEQSkipsCommentsAndBlankLines(t *testing.T) {
	lines := []string{
		"# header",
		"",
		"1 G 3",
		"2 G 0",
		"3 C 1",
	}
	pairs, err := ParseBPSEQ(lines)
	if err != nil {
		t.Fatalf("ParseBPSEQ returned error: %v", err)
	}
	want := []basepair.BasePair{{I: 1, J: 3}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("ParseBPSEQ(...) = %v, want %v", pairs, want)
	}
}
