package cli

import "context"

func newHelpCommand() *Command {
	return &Command{
		Usage: "help",
		Short: "displays this help message",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			o.Println("imgfscmd [COMMAND] [ARGUMENTS]")
			o.Println()
			o.Println("  help                   displays this help message")
			o.Println("  list   <imgFS_filename>")
			o.Println("  create <imgFS_filename> [-max_files N] [-thumb_res W H] [-small_res W H]")
			o.Println("  read   <imgFS_filename> <imgID> [thumb|thumbnail|small|orig|original]")
			o.Println("  insert <imgFS_filename> <imgID> <filename>")
			o.Println("  delete <imgFS_filename> <imgID>")
			return nil
		},
	}
}
