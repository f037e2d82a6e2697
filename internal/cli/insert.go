package cli

import (
	"context"
	"fmt"
	"os"

	"imgfs/internal/imgfs"
)

func newInsertCommand() *Command {
	return &Command{
		Usage: "insert <imgFS_filename> <imgID> <filename>",
		Short: "inserts an image into the imgFS",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 3 {
				return imgfs.KindError(imgfs.NotEnoughArguments)
			}

			path, imgID, src := args[0], args[1], args[2]

			data, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("reading %s: %w", src, err)
			}

			store, err := openStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Insert(ctx, imgID, data); err != nil {
				return err
			}
			o.Println("inserted", imgID)
			return nil
		},
	}
}
