// Command knothash computes Knot Hash checksums and digests and analyses
// the disk map derived from a key.
//
//	knothash -checksum -input 3,4,1,5
//	knothash -hash -input "AoC 2017" [-verify 33efeb34...]
//	knothash -grid -input flqrgnkx [-render | -view]
//
// Settings (ring_size, workers, grid_width, grid_height) are read from
// ~/.knothash.toml when present, or from the file named by -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/knotgrid/diskgrid"
	"github.com/katalvlaran/knotgrid/knot"
)

var errMismatch = errors.New("digest mismatch")

func main() {
	log.SetFlags(0)
	log.SetPrefix("knothash: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if err != flag.ErrHelp {
				log.Print(err)
			}
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("knothash", flag.ContinueOnError)
	isChecksum := fset.Bool("checksum", false, "single-round checksum of a comma-separated length list")
	isHash := fset.Bool("hash", false, "64-round hex digest of the input text")
	isGrid := fset.Bool("grid", false, "used squares and regions of the disk map for the input key")
	in := fset.String("input", "", "input text")
	file := fset.String("file", "", "read the input from this file")
	verify := fset.String("verify", "", "with -hash: expected hex digest, exit 1 on mismatch")
	render := fset.Bool("render", false, "with -grid: print the top-left corner of the map")
	view := fset.Bool("view", false, "with -grid: browse the map interactively")
	configFile := fset.String("config", defaultConfigFile, "configuration file")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if *verify != "" && !*isHash {
		fset.Usage()
		return fmt.Errorf("-verify requires -hash: %w", flag.ErrHelp)
	}
	if (*render || *view) && !*isGrid {
		fset.Usage()
		return fmt.Errorf("-render and -view require -grid: %w", flag.ErrHelp)
	}
	explicit := false
	fset.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	conf, err := loadConfig(*configFile, explicit)
	if err != nil {
		return err
	}

	input := *in
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		input = string(data)
	}

	switch {
	case *isChecksum:
		lengths, err := knot.ParseLengths(input)
		if err != nil {
			return err
		}
		sum, err := knot.ChecksumAfterOneRound(lengths, conf.RingSize)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sum)
	case *isHash:
		d := knot.DigestFromText(input)
		fmt.Fprintln(out, d.Hex())
		if *verify != "" {
			want, err := knot.ParseDigest(*verify)
			if err != nil {
				return err
			}
			if want != d {
				return fmt.Errorf("%w: got %s, want %s", errMismatch, d, want)
			}
		}
	case *isGrid:
		g, err := diskgrid.New(input, conf.gridOptions()...)
		if err != nil {
			return err
		}
		if *view {
			return runViewer(g)
		}
		if *render {
			fmt.Fprint(out, g.Render(conf.GridWidth, conf.GridHeight))
		}
		fmt.Fprintf(out, "used: %d\nregions: %d\n", g.Used(), g.Regions())
	default:
		fset.Usage()
		return flag.ErrHelp
	}

	return nil
}
