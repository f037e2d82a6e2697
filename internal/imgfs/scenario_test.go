package imgfs_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ifs "imgfs/internal/fs"
	"imgfs/internal/imgfs"
)

// TestEndToEndScenario walks the six-step scenario from the store's
// testable-properties section: create, dedup-insert, lazy-resize,
// delete-with-shared-blob-survival, slot reuse, and a final duplicate-ID
// rejection that must leave state unchanged.
func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	fsys := ifs.NewReal()
	path := filepath.Join(t.TempDir(), "store.imgfs")

	cfg := imgfs.Config{
		MaxFiles: 4,
		ThumbRes: [2]uint16{64, 64},
		SmallRes: [2]uint16{256, 256},
	}
	require.NoError(t, imgfs.Create(path, cfg))

	codec := &fakeCodec{}
	st, err := imgfs.Open(fsys, codec, path)
	require.NoError(t, err)
	defer st.Close()

	// 1. Insert A (5000 bytes). list(JSON) => ["A"].
	bodyA := bytes.Repeat([]byte{0xAB}, 5000)
	require.NoError(t, st.Insert(ctx, "A", bodyA))

	ids, err := st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids)

	sizeAfter1, err := fileSize(path)
	require.NoError(t, err)

	// 2. Insert B with identical bytes to A. list => ["A","B"]. File size
	// unchanged. read(A,ORIG) and read(B,ORIG) byte-identical.
	require.NoError(t, st.Insert(ctx, "B", bodyA))

	ids, err = st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, ids)

	sizeAfter2, err := fileSize(path)
	require.NoError(t, err)
	require.Equal(t, sizeAfter1, sizeAfter2, "dedup must not grow the file")

	gotA, err := st.Read(ctx, "A", imgfs.OrigRes)
	require.NoError(t, err)
	gotB, err := st.Read(ctx, "B", imgfs.OrigRes)
	require.NoError(t, err)
	require.Equal(t, gotA, gotB)

	// 3. read(A, THUMB). File grows by exactly the thumbnail length.
	// read(B, THUMB) does not grow the file further and matches A's thumb.
	thumbA, err := st.Read(ctx, "A", imgfs.ThumbRes)
	require.NoError(t, err)

	sizeAfter3, err := fileSize(path)
	require.NoError(t, err)
	require.Equal(t, sizeAfter2+int64(len(thumbA)), sizeAfter3)

	versionAfter3 := st.Header().Version

	thumbB, err := st.Read(ctx, "B", imgfs.ThumbRes)
	require.NoError(t, err)
	require.Equal(t, thumbA, thumbB)

	sizeAfter3b, err := fileSize(path)
	require.NoError(t, err)
	require.Equal(t, sizeAfter3, sizeAfter3b, "reading B's already-shared thumb must not grow the file")

	// 4. delete A. list => ["B"], nb_files==1, version increased by 1 over
	// step 3. read(B, THUMB) still succeeds with the same bytes.
	require.NoError(t, st.Delete(ctx, "A"))

	ids, err = st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, ids)
	require.EqualValues(t, 1, st.Header().NbFiles)
	require.Equal(t, versionAfter3+1, st.Header().Version)

	thumbBAfterDelete, err := st.Read(ctx, "B", imgfs.ThumbRes)
	require.NoError(t, err)
	require.Equal(t, thumbA, thumbBAfterDelete)

	// 5. Insert C (different content). list => ["C","B"] — slot 0 reused.
	bodyC := []byte("completely different content for C")
	require.NoError(t, st.Insert(ctx, "C", bodyC))

	ids, err = st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B"}, ids)

	versionAfter5 := st.Header().Version

	// 6. insert(_, "B") with different content => DuplicateId; state
	// unchanged from step 5.
	err = st.Insert(ctx, "B", []byte("yet more different content"))
	require.Error(t, err)
	require.Equal(t, imgfs.DuplicateId, imgfs.KindOf(err))

	ids, err = st.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B"}, ids)
	require.Equal(t, versionAfter5, st.Header().Version, "a rejected insert must not bump version")
}

func fileSize(path string) (int64, error) {
	info, err := ifs.NewReal().Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
