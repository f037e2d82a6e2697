package imgfs_test

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ifs "imgfs/internal/fs"
	"imgfs/internal/imgfs"
)

// Random-op-sequence property tests (P1-P4, spec.md §8), grounded on the
// teacher's pkg/slotcache state-model harness style
// (state_model_property_test.go's seed loop + per-op invariant check),
// scaled down to imgFS's much smaller invariant surface: rather than
// mirroring a separate in-memory model, each operation is applied directly
// to a real Store and P1-P4 are checked against its observable state after
// every single op, successful or not.

var propIDs = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
var propBodies = [][]byte{
	[]byte("alpha body"),
	[]byte("beta body, a bit longer"),
	[]byte("gamma"),
	[]byte("delta body with more bytes than the others"),
}
var propResolutions = []imgfs.Resolution{imgfs.ThumbRes, imgfs.SmallRes, imgfs.OrigRes}

func TestPropertiesHoldAfterRandomOpSequence(t *testing.T) {
	const seedCount = 20
	const opsPerSeed = 150

	for seed := int64(1); seed <= seedCount; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "store.imgfs")
			cfg := imgfs.Config{
				MaxFiles: 64,
				ThumbRes: [2]uint16{64, 64},
				SmallRes: [2]uint16{256, 256},
			}
			require.NoError(t, imgfs.Create(path, cfg))

			st, err := imgfs.Open(ifs.NewReal(), &fakeCodec{}, path)
			require.NoError(t, err)
			defer st.Close()

			rng := rand.New(rand.NewSource(seed))

			for i := 0; i < opsPerSeed; i++ {
				switch rng.Intn(3) {
				case 0:
					id := propIDs[rng.Intn(len(propIDs))]
					body := propBodies[rng.Intn(len(propBodies))]
					_ = st.Insert(ctx, id, body) // duplicate IDs/Full are expected failures
				case 1:
					id := propIDs[rng.Intn(len(propIDs))]
					_ = st.Delete(ctx, id) // deleting an absent ID is an expected failure
				case 2:
					id := propIDs[rng.Intn(len(propIDs))]
					res := propResolutions[rng.Intn(len(propResolutions))]
					_, _ = st.Read(ctx, id, res) // reading an absent ID is an expected failure
				}

				assertStoreInvariants(t, ctx, st)
			}
		})
	}
}

// assertStoreInvariants checks P1-P4 against the store's current
// observable state.
func assertStoreInvariants(t *testing.T, ctx context.Context, st *imgfs.Store) {
	t.Helper()

	info := st.Header()
	slots, err := st.ListDetailed()
	require.NoError(t, err)

	// P1: nb_files equals the count of non-empty slots.
	require.Len(t, slots, int(info.NbFiles), "P1: nb_files must equal the number of non-empty slots")

	// P2: identifiers of non-empty slots are pairwise distinct.
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		require.False(t, seen[s.ImgID], "P2: duplicate non-empty slot ID %q", s.ImgID)
		seen[s.ImgID] = true
	}

	for _, s := range slots {
		// P3: the original resolution is always present for a non-empty slot.
		require.Greater(t, s.Offset[imgfs.OrigRes], uint64(0), "P3: ORIG offset must be set for %q", s.ImgID)
		require.Greater(t, s.Size[imgfs.OrigRes], uint64(0), "P3: ORIG size must be set for %q", s.ImgID)

		// P4: for every resolution, offset==0 iff size==0.
		for _, r := range []imgfs.Resolution{imgfs.ThumbRes, imgfs.SmallRes, imgfs.OrigRes} {
			offZero := s.Offset[r] == 0
			sizeZero := s.Size[r] == 0
			require.Equal(t, offZero, sizeZero, "P4: offset/size zero-iff violated for %q at %v", s.ImgID, r)
		}

		// Every still-listed ID must remain readable at ORIG.
		_, err := st.Read(ctx, s.ImgID, imgfs.OrigRes)
		require.NoError(t, err, "listed ID %q must be readable at ORIG", s.ImgID)
	}
}
