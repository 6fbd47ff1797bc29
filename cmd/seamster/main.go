package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wrsch/seamster"
	"github.com/wrsch/seamster/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌┬┐┌─┐┬─┐
└─┐├┤ ├─┤│││└─┐ │ ├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴└─┘ ┴ └─┘┴└─

Content aware image resize library.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source")
	destination = flag.String("out", pipeName, "Destination")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	percentage  = flag.Bool("perc", false, "Reduce image by percentage")
	scale       = flag.Bool("scale", false, "Proportional scaling")
	debug       = flag.Bool("debug", false, "Paint the removed seams over the source image")
	graph       = flag.String("graph", "", "Export the seam graph instead of resizing (dot or svg)")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *graph != "" {
		exportGraph(*source, *destination, *graph)
		return
	}

	if *newWidth == 0 && *newHeight == 0 && !*percentage {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide a width, height or percentage for the resize!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	proc := &seamster.Processor{
		NewWidth:   *newWidth,
		NewHeight:  *newHeight,
		Percentage: *percentage,
		Scale:      *scale,
		Debug:      *debug,
	}

	proc.Execute(&seamster.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	})
}

// exportGraph dumps the seam graph of the source image to the destination,
// either as a DOT document or rendered to SVG.
func exportGraph(in, out, format string) {
	if format != "dot" && format != "svg" {
		log.Fatal(utils.DecorateText(fmt.Sprintf("unknown graph format %q, use dot or svg", format), utils.ErrorMessage))
	}

	var (
		src io.Reader = os.Stdin
		dst io.Writer = os.Stdout
	)
	if in != pipeName {
		f, err := os.Open(in)
		if err != nil {
			log.Fatal(utils.DecorateText(fmt.Sprintf("unable to open the source file: %v", err), utils.ErrorMessage))
		}
		defer f.Close()
		src = f
	}
	if out != pipeName {
		f, err := os.Create(out)
		if err != nil {
			log.Fatal(utils.DecorateText(fmt.Sprintf("unable to create the destination file: %v", err), utils.ErrorMessage))
		}
		defer f.Close()
		dst = f
	}

	if err := seamster.ExportGraph(src, dst, format == "svg"); err != nil {
		log.Fatal(utils.DecorateText(fmt.Sprintf("unable to export the seam graph: %v", err), utils.ErrorMessage))
	}
	if out != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe seam graph has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(out), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
