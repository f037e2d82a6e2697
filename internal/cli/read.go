package cli

import (
	"context"
	"fmt"
	"os"

	"imgfs/internal/imgfs"
)

func newReadCommand() *Command {
	return &Command{
		Usage: "read <imgFS_filename> <imgID> [thumb|thumbnail|small|orig|original]",
		Short: "reads an image from the imgFS and writes it to disk",
		Long: "Writes the requested resolution of <imgID> to <imgID>_<suffix>.jpg in " +
			"the current directory, where suffix is thumb, small, or orig. " +
			"Resolution defaults to original.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return imgfs.KindError(imgfs.NotEnoughArguments)
			}

			path, imgID := args[0], args[1]

			res := imgfs.OrigRes
			if len(args) == 3 {
				r, ok := imgfs.ParseResolution(args[2])
				if !ok {
					return imgfs.KindError(imgfs.Resolutions)
				}
				res = r
			}

			store, err := openStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := store.Read(ctx, imgID, res)
			if err != nil {
				return err
			}

			out := imgID + "_" + resSuffix(res) + ".jpg"
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			o.Println("written", out)
			return nil
		},
	}
}

func resSuffix(r imgfs.Resolution) string {
	switch r {
	case imgfs.ThumbRes:
		return "thumb"
	case imgfs.SmallRes:
		return "small"
	default:
		return "orig"
	}
}
