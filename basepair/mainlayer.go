package basepair

import (
	"sort"

	"github.com/TimothyStiles/rnaknot/rnaerr"
)

// MainLayer extracts the largest nested, non-crossing subset of pairs: the
// "main layer" of a secondary structure. Two pairs (a,b) and (c,d) cross iff
// a < c < b < d or c < a < d < b; the main layer is the maximum-cardinality
// subset containing no crossing pair, chosen deterministically.
//
// n is the sequence length; every pair must satisfy 1 <= i < j <= n, and no
// residue may appear as an endpoint of more than one pair - MainLayer
// reduces crossings, it does not resolve conflicting partners.
//
// MainLayer is idempotent: calling it again on its own output is a no-op,
// since an already non-crossing set contains no conflict to remove.
func MainLayer(pairs []BasePair, n int) ([]BasePair, error) {
	partner := make([]int, n+2) // 1-indexed, partner[0] unused, partner[n+1] sentinel
	for _, bp := range pairs {
		if bp.I < 1 || bp.I > n {
			return nil, rnaerr.Index(bp.I, "base pair (%d,%d) out of range [1,%d]", bp.I, bp.J, n)
		}
		if bp.J < 1 || bp.J > n {
			return nil, rnaerr.Index(bp.J, "base pair (%d,%d) out of range [1,%d]", bp.I, bp.J, n)
		}
		if bp.I >= bp.J {
			return nil, rnaerr.Index(bp.I, "base pair (%d,%d) must have i < j", bp.I, bp.J)
		}
		if partner[bp.I] != 0 {
			return nil, rnaerr.Pairing(bp.I, bp.J, "residue %d already paired with %d", bp.I, partner[bp.I])
		}
		if partner[bp.J] != 0 {
			return nil, rnaerr.Pairing(bp.J, bp.I, "residue %d already paired with %d", bp.J, partner[bp.J])
		}
		partner[bp.I] = bp.J
		partner[bp.J] = bp.I
	}

	// pairAt[i] is the candidate pair's 3' endpoint opened at i, 0 if i never
	// opens a pair (i.e. i is unpaired, or i is itself a 3' endpoint).
	pairAt := make([]int, n+2)
	bpTypeAt := make(map[int]string, len(pairs))
	for _, bp := range pairs {
		pairAt[bp.I] = bp.J
		bpTypeAt[bp.I] = bp.BPType
	}

	// dp[i][j] is the size of the largest non-crossing subset of candidate
	// pairs with both endpoints inside the window [i, j]. Each row is O(1)
	// extra work beyond the previous row because each index opens at most
	// one candidate pair (duplicate endpoints were rejected above), giving
	// O(n^2) total time instead of the generic O(n^3) interval DP.
	dp := make([][]int, n+2)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := n; i >= 1; i-- {
		for j := i - 1; j <= n; j++ {
			if i > j {
				dp[i][j] = 0
				continue
			}
			best := dp[i+1][j] // leave i unpaired
			if k := pairAt[i]; k != 0 && k <= j {
				withPair := 1 + dp[i+1][k-1] + dp[k+1][j]
				if withPair >= best {
					best = withPair
				}
			}
			dp[i][j] = best
		}
	}

	var layer []BasePair
	i, j := 1, n
	for i <= j {
		if k := pairAt[i]; k != 0 && k <= j {
			withPair := 1 + dp[i+1][k-1] + dp[k+1][j]
			// tie-break: prefer keeping the outermost candidate pair.
			if withPair >= dp[i+1][j] {
				layer = append(layer, BasePair{I: i, J: k, BPType: bpTypeAt[i]})
				// recurse into [i+1, k-1]; [k+1, j] is handled by continuing
				// this loop from k+1.
				inner := reconstructMainLayer(dp, pairAt, bpTypeAt, i+1, k-1)
				layer = append(layer, inner...)
				i = k + 1
				continue
			}
		}
		i++
	}

	sort.Slice(layer, func(a, b int) bool {
		if layer[a].I != layer[b].I {
			return layer[a].I < layer[b].I
		}
		return layer[a].J > layer[b].J
	})
	return layer, nil
}

// reconstructMainLayer walks the [lo, hi] window of the dp table built by
// MainLayer and returns the pairs selected inside it.
func reconstructMainLayer(dp [][]int, pairAt []int, bpTypeAt map[int]string, lo, hi int) []BasePair {
	var out []BasePair
	i, j := lo, hi
	for i <= j {
		if k := pairAt[i]; k != 0 && k <= j {
			withPair := 1 + dp[i+1][k-1] + dp[k+1][j]
			if withPair >= dp[i+1][j] {
				out = append(out, BasePair{I: i, J: k, BPType: bpTypeAt[i]})
				out = append(out, reconstructMainLayer(dp, pairAt, bpTypeAt, i+1, k-1)...)
				i = k + 1
				continue
			}
		}
		i++
	}
	return out
}
