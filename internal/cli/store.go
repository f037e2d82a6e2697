package cli

import (
	ifs "imgfs/internal/fs"
	"imgfs/internal/imgcodec"
	"imgfs/internal/imgfs"
)

// openStore opens the imgFS file at path with the real filesystem and the
// default JPEG codec — list, read, insert and delete all need exactly this.
func openStore(path string) (*imgfs.Store, error) {
	return imgfs.Open(ifs.NewReal(), imgcodec.NewJPEG(), path)
}
