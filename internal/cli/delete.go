package cli

import (
	"context"

	"imgfs/internal/imgfs"
)

func newDeleteCommand() *Command {
	return &Command{
		Usage: "delete <imgFS_filename> <imgID>",
		Short: "deletes an image from the imgFS",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 2 {
				return imgfs.KindError(imgfs.NotEnoughArguments)
			}

			path, imgID := args[0], args[1]

			store, err := openStore(path)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(ctx, imgID); err != nil {
				return err
			}
			o.Println("deleted", imgID)
			return nil
		},
	}
}
