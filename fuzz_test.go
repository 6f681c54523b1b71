package ranktree

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFuzzOperationSequenceStaysSortedAndBalanced generates random batches
// of keys with gofuzz and replays them as a mixed insert/delete/rewind
// sequence, checking the red-black and ordering invariants after every
// step, the same property this package's deterministic scenario tests pin
// down for a handful of fixed sequences.
func TestFuzzOperationSequenceStaysSortedAndBalanced(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(20, 80)

	for run := 0; run < 20; run++ {
		var keys []int16
		f.Fuzz(&keys)

		tr := New[int16, int]()
		present := map[int16]bool{}
		var maxVersion int

		for i, k := range keys {
			switch i % 5 {
			case 3:
				if present[k] {
					tr.Delete(k)
					delete(present, k)
				}
			case 4:
				if v := tr.Version(); v > 0 {
					delta := 1 + int(k)%v
					if delta < 0 {
						delta = -delta
					}
					if delta >= 1 && delta <= v {
						require.NoError(t, tr.Rewind(delta))
					}
				}
			default:
				tr.Set(k, int(k))
				present[k] = true
			}
			if v := tr.Version(); v > maxVersion {
				maxVersion = v
			}

			checkRedBlack(t, tr.reg.currentRoot())
			assert.IsIncreasing(t, inorder[int16, int](tr.reg.currentRoot()))
		}
	}
}
