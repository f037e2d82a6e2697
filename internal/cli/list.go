package cli

import (
	"context"

	"imgfs/internal/imgfs"
)

func newListCommand() *Command {
	return &Command{
		Usage: "list <imgFS_filename>",
		Short: "lists the images in the imgFS",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return imgfs.KindError(imgfs.NotEnoughArguments)
			}

			store, err := openStore(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			imgfs.PrintHeader(o.Writer(), store.Header())

			slots, err := store.ListDetailed()
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				o.Println("<< empty imgFS >>")
				return nil
			}
			for _, s := range slots {
				imgfs.PrintSlot(o.Writer(), s)
			}
			return nil
		},
	}
}
