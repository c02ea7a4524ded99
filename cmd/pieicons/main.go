// Command pieicons writes the cluster icons for a list of marker styles.
//
//	pieicons -out icons blue blue red
//
// writes icons/small.png, icons/medium.png and icons/large.png.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/vasalvit/piechart"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		format     = flag.String("format", "", "output format, png or svg (overrides config)")
		outDir     = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: pieicons [flags] style...")
	}

	cfg, err := piechart.LoadConfigFile(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if *format != "" {
		cfg.Format = *format
	}

	builder, err := piechart.NewIconBuilder(cfg)
	if err != nil {
		log.Fatalf("error creating icon builder: %v", err)
	}

	members := flag.Args()
	tally := piechart.Aggregate(members, piechart.PresetStyle)
	icons, err := builder.BuildClusterVisual(tally, len(members))
	if err != nil {
		log.Fatalf("error building icons: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, icon := range icons {
		path := filepath.Join(*outDir, icon.Name+"."+builder.Encoder().Extension())
		if err := os.WriteFile(path, icon.Image, 0o644); err != nil {
			log.Fatalf("error writing %s: %v", path, err)
		}
		log.Printf("wrote %s (%dx%d, %d bytes)", path, icon.Size.Width, icon.Size.Height, len(icon.Image))
	}
}
