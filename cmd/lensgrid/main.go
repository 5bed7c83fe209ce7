package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/ntessore/lensgrid/core"
	"github.com/ntessore/lensgrid/grid"
	"github.com/ntessore/lensgrid/lens"
	"github.com/ntessore/lensgrid/log"
)

var (
	width       int
	height      int
	n           int
	thresh      float64
	maxDepth    int
	paramsFile  string
	output      string
	topK        int
	noLens      bool
	showVersion bool
	verbose     bool
	veryVerbose bool
	quiet       bool
)

func main() {
	flag.IntVar(&width, "width", grid.DefaultWidth, "The domain width in cells.")
	flag.IntVar(&height, "height", grid.DefaultHeight, "The domain height in cells.")
	flag.IntVar(&n, "n", grid.DefaultN, "The number of rays per cell side.")
	flag.Float64Var(&thresh, "thresh", grid.DefaultThresh, "The refinement threshold factor.")
	flag.IntVar(&maxDepth, "maxdepth", grid.DefaultMaxDepth, "The subdivision cap per root cell.")
	flag.StringVar(&paramsFile, "params", "", "The JSON parameter file.")
	flag.StringVar(&output, "output", "table", "The report format: table or json.")
	flag.IntVar(&topK, "top", 0, "Also report the K densest leaves.")
	flag.BoolVar(&noLens, "nolens", false, "Trace rays without a lens.")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging.")
	flag.BoolVar(&quiet, "q", false, "Quiet logging. Totally silent.")
	flag.BoolVar(&veryVerbose, "vv", false, "Enable very verbose logging.")
	flag.Parse()

	if showVersion {
		fmt.Fprintf(os.Stdout, "lensgrid %s (git:%s)\n", core.Version, core.GitSHA)
		return
	}

	var logw io.Writer = os.Stderr
	if quiet {
		logw = ioutil.Discard
	}
	log.Default = log.New(logw, &log.Config{
		HideDebug: !veryVerbose,
		HideWarn:  !(veryVerbose || verbose),
	})
	core.ShowDebugMessages = veryVerbose

	var opts grid.Options
	var name string
	if paramsFile != "" {
		params, err := grid.LoadParams(paramsFile)
		if err != nil {
			log.Fatal(err)
		}
		opts = params.Opts
		name = params.Name
	}

	// flags that were given explicitly win over the parameter file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.Width = width
		case "height":
			opts.Height = height
		case "n":
			opts.N = n
		case "thresh":
			opts.Thresh = thresh
		case "maxdepth":
			opts.MaxDepth = maxDepth
		}
	})
	if noLens {
		opts.Transform = lens.Identity
	} else if opts.Transform == nil {
		opts.Transform = grid.DefaultLens.Deflect
	}

	gitsha := " (" + core.GitSHA + ")"
	if gitsha == " (0000000)" {
		gitsha = ""
	}
	log.Infof("lensgrid %s%s", core.Version, gitsha)

	g := grid.Build(opts)
	st := g.Stats()
	log.Infof("traced %d rays: %d kept, %d escaped",
		g.Tally.Shot, g.Tally.Kept, g.Tally.Escaped)
	log.Infof("refined into %d leaves, max depth %d, in %s",
		st.Leaves, st.MaxDepth, g.Elapsed)
	log.Debugf("leaf counts: min %d, median %d, max %d",
		st.MinCount, st.MedianCount, st.MaxCount)

	var err error
	switch output {
	default:
		log.Fatalf("unknown output format '%s'", output)
	case "table":
		err = g.WriteTable(os.Stdout)
		if err == nil && topK > 0 {
			fmt.Fprintln(os.Stdout)
			err = g.WriteTop(os.Stdout, topK)
		}
	case "json":
		err = g.WriteJSON(os.Stdout, name)
	}
	if err != nil {
		log.Fatal(err)
	}
	g.Destroy()
}
