package imgfs_test

import "fmt"

// fakeCodec is a deterministic stand-in for imgcodec.Codec: it treats the
// "image" as opaque bytes and derives a resized blob by truncating/padding
// rather than actually decoding JPEG, so tests don't need real image
// fixtures to exercise the resize/dedup/read contract.
type fakeCodec struct {
	dimErr      error
	thumbnailFn func(data []byte, maxEdge uint16) ([]byte, error)
}

func (f *fakeCodec) Dimensions(data []byte) (uint32, uint32, error) {
	if f.dimErr != nil {
		return 0, 0, f.dimErr
	}
	return uint32(len(data)), uint32(len(data)), nil
}

func (f *fakeCodec) Thumbnail(data []byte, maxEdge uint16) ([]byte, error) {
	if f.thumbnailFn != nil {
		return f.thumbnailFn(data, maxEdge)
	}
	return []byte(fmt.Sprintf("resized(%d,%d bytes)", maxEdge, len(data))), nil
}
