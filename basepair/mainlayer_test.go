package basepair

import (
	"reflect"
	"testing"
)

func TestMainLayerNonCrossingIsIdentity(t *testing.T) {
	pairs := []BasePair{{I: 1, J: 10}, {I: 2, J: 9}, {I: 3, J: 8}, {I: 5, J: 6}}
	got, err := MainLayer(pairs, 10)
	if err != nil {
		t.Fatalf("MainLayer returned error: %v", err)
	}
	want := []BasePair{{I: 1, J: 10}, {I: 2, J: 9}, {I: 3, J: 8}, {I: 5, J: 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MainLayer(%v) = %v, want %v", pairs, got, want)
	}
}

func TestMainLayerIdempotent(t *testing.T) {
	pairs := []BasePair{
		{I: 1, J: 8}, {I: 2, J: 7}, {I: 3, J: 6},
		{I: 10, J: 16}, {I: 11, J: 15}, {I: 12, J: 14},
		{I: 4, J: 12}, // crosses (10,16) family
	}
	once, err := MainLayer(pairs, 16)
	if err != nil {
		t.Fatalf("MainLayer returned error: %v", err)
	}
	twice, err := MainLayer(once, 16)
	if err != nil {
		t.Fatalf("MainLayer (second pass) returned error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("MainLayer not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestMainLayerDropsCrossingPair(t *testing.T) {
	// H-type pseudoknot from the end-to-end scenario: (4,12) crosses the
	// second stem and must be dropped.
	pairs := []BasePair{
		{I: 1, J: 8}, {I: 2, J: 7}, {I: 3, J: 6},
		{I: 10, J: 16}, {I: 11, J: 15}, {I: 12, J: 14},
		{I: 4, J: 12},
	}
	got, err := MainLayer(pairs, 16)
	if err != nil {
		t.Fatalf("MainLayer returned error: %v", err)
	}
	for _, bp := range got {
		if bp.I == 4 && bp.J == 12 {
			t.Fatalf("MainLayer kept crossing pair (4,12): %v", got)
		}
	}
	if len(got) != 6 {
		t.Errorf("MainLayer(%v) returned %d pairs, want 6", pairs, len(got))
	}
}

func TestMainLayerDuplicateEndpoint(t *testing.T) {
	pairs := []BasePair{{I: 1, J: 5}, {I: 1, J: 8}}
	if _, err := MainLayer(pairs, 10); err == nil {
		t.Fatalf("MainLayer with duplicate endpoint should have failed")
	}
}

func TestMainLayerIndexOutOfRange(t *testing.T) {
	pairs := []BasePair{{I: 0, J: 5}}
	if _, err := MainLayer(pairs, 10); err == nil {
		t.Fatalf("MainLayer with out-of-range index should have failed")
	}
}

func TestMainLayerPrefersOutermostOnTie(t *testing.T) {
	// Two mutually-crossing pairs of equal weight: the outermost (smaller
	// i, larger j) should survive.
	pairs := []BasePair{{I: 1, J: 5}, {I: 2, J: 6}}
	got, err := MainLayer(pairs, 6)
	if err != nil {
		t.Fatalf("MainLayer returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("MainLayer(%v) = %v, want exactly 1 pair", pairs, got)
	}
	if got[0] != (BasePair{I: 1, J: 5}) {
		t.Errorf("MainLayer(%v) = %v, want the outermost pair (1,5)", pairs, got)
	}
}
