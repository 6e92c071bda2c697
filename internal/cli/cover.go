package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/simonhull/commontags"
)

var errNoCover = errors.New("no cover art")

// writeCover writes the picture to w. With size > 0 the image is scaled to
// fit a size x size box and re-encoded in format; otherwise the embedded
// bytes are copied unchanged.
func writeCover(w io.Writer, pic *commontags.Picture, size int, format imaging.Format) error {
	if pic == nil || len(pic.Data) == 0 {
		return errNoCover
	}
	if size <= 0 {
		_, err := w.Write(pic.Data)
		return err
	}

	img, err := imaging.Decode(bytes.NewReader(pic.Data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode %s: %w", pic.Format, err)
	}
	b := img.Bounds()
	if b.Dx() > size || b.Dy() > size {
		img = imaging.Fit(img, size, size, imaging.Lanczos)
	}
	return imaging.Encode(w, img, format)
}

var coverCmd = &cobra.Command{
	Use:   "cover <file>",
	Short: "Extract the cover picture of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := cfg.parseOptions()
		if err != nil {
			return err
		}
		res, err := commontags.ParseFileContext(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}
		pic := res.Common.Cover()
		if pic == nil {
			return fmt.Errorf("%s: %w", args[0], errNoCover)
		}

		size, _ := cmd.Flags().GetInt("size")
		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			return writeCover(cmd.OutOrStdout(), pic, size, imaging.JPEG)
		}

		format := imaging.JPEG
		if size > 0 {
			if format, err = imaging.FormatFromFilename(out); err != nil {
				return err
			}
		}
		f, err := os.Create(filepath.Clean(out))
		if err != nil {
			return err
		}
		if err := writeCover(f, pic, size, format); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

func init() {
	coverCmd.Flags().StringP("out", "f", "", "write the picture to this file instead of stdout")
	coverCmd.Flags().Int("size", 0, "scale the picture to fit this many pixels")
	rootCmd.AddCommand(coverCmd)
}
