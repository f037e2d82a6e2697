package cli

import (
	"context"
	"strconv"

	"imgfs/internal/imgfs"
)

func newCreateCommand() *Command {
	return &Command{
		Usage: "create <imgFS_filename> [-max_files N] [-thumb_res W H] [-small_res W H]",
		Short: "creates a new imgFS",
		Long: "Creates a new, empty imgFS at <imgFS_filename>. -max_files sets the slot " +
			"table size (default 128). -thumb_res/-small_res set the two derived " +
			"resolutions as width then height (defaults 64x64 and 256x256).",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return imgfs.KindError(imgfs.NotEnoughArguments)
			}

			path := args[0]
			rest := args[1:]

			cfg := imgfs.Config{
				MaxFiles: imgfs.DefaultMaxFiles,
				ThumbRes: [2]uint16{imgfs.DefaultThumbRes, imgfs.DefaultThumbRes},
				SmallRes: [2]uint16{imgfs.DefaultSmallRes, imgfs.DefaultSmallRes},
			}

			i := 0
			for i < len(rest) {
				switch rest[i] {
				case "-max_files":
					n, err := parseUint(rest, i+1)
					if err != nil {
						return err
					}
					if uint32(n) == imgfs.MaxMaxFiles {
						return imgfs.KindError(imgfs.MaxFiles)
					}
					cfg.MaxFiles = uint32(n)
					i += 2

				case "-thumb_res":
					w, h, err := parseWH(rest, i+1, imgfs.MaxThumbRes)
					if err != nil {
						return err
					}
					cfg.ThumbRes = [2]uint16{w, h}
					i += 3

				case "-small_res":
					w, h, err := parseWH(rest, i+1, imgfs.MaxSmallRes)
					if err != nil {
						return err
					}
					cfg.SmallRes = [2]uint16{w, h}
					i += 3

				default:
					return imgfs.KindError(imgfs.InvalidArgument)
				}
			}

			if err := imgfs.Create(path, cfg); err != nil {
				return err
			}
			o.Printf("%d item(s) written\n", cfg.MaxFiles+1)
			return nil
		},
	}
}

func parseUint(args []string, i int) (uint32, error) {
	if i >= len(args) {
		return 0, imgfs.KindError(imgfs.NotEnoughArguments)
	}
	n, err := strconv.ParseUint(args[i], 10, 32)
	if err != nil {
		return 0, imgfs.KindError(imgfs.InvalidArgument)
	}
	return uint32(n), nil
}

func parseWH(args []string, i int, max uint16) (uint16, uint16, error) {
	if i+1 >= len(args) {
		return 0, 0, imgfs.KindError(imgfs.NotEnoughArguments)
	}
	w, errW := strconv.ParseUint(args[i], 10, 16)
	h, errH := strconv.ParseUint(args[i+1], 10, 16)
	if errW != nil || errH != nil || w == 0 || h == 0 {
		return 0, 0, imgfs.KindError(imgfs.Resolutions)
	}
	if uint16(w) > max || uint16(h) > max {
		return 0, 0, imgfs.KindError(imgfs.Resolutions)
	}
	return uint16(w), uint16(h), nil
}
