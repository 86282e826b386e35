package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"foodieframe_client/internal/media"
	"foodieframe_client/internal/util"
)

func (c *CLI) media(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: media analyze|thumbnail")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "analyze":
		if len(rest) != 1 {
			return fmt.Errorf("usage: media analyze <file>")
		}
		return c.mediaAnalyze(rest[0])
	case "thumbnail":
		fs := flag.NewFlagSet("media thumbnail", flag.ContinueOnError)
		offset := fs.String("at", "00:00:01", "timestamp to grab the frame from")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if fs.NArg() != 2 {
			return fmt.Errorf("usage: media thumbnail <video> <output.jpg> [-at hh:mm:ss]")
		}
		if err := media.Thumbnail(fs.Arg(0), fs.Arg(1), *offset); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Wrote %s\n", fs.Arg(1))
		return nil
	default:
		return fmt.Errorf("unknown media command %q", sub)
	}
}

func (c *CLI) mediaAnalyze(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	mimeType, err := util.ValidateMimeType(file, []string{util.MimeImage, util.MimeVideo})
	file.Close()
	if err != nil {
		return err
	}

	var report *media.Report
	if util.IsVideo(mimeType) {
		report, err = media.AnalyzeVideo(path)
	} else {
		report, err = media.AnalyzeImage(path)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Out, "%s: %s %dx%d, %d bytes, quality %s\n",
		report.Path, report.Kind, report.Width, report.Height, report.Size, report.Quality)
	if report.Suggestion != "" {
		fmt.Fprintf(c.Out, "Suggestion: %s\n", report.Suggestion)
	}
	return nil
}

// uploadStatus prints the backend's upload subsystem diagnostics verbatim.
func (c *CLI) uploadStatus(ctx context.Context) error {
	status, err := c.App.API.Maintenance.UploadStatus(ctx)
	if err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "%s\n", pretty)
	return nil
}
