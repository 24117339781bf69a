package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ericdfournier/arrivalTool/pkg"
)

func main() {

	// start timer
	start := time.Now()

	// print status
	log.Println("Parsing Arguments...")

	// get current working directory
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	// set defaults relative to working directory
	cfg := arrivalTool.DefaultConfig(wd)

	// set cli flags
	flag.StringVar(&cfg.Mode, "m", cfg.Mode,
		"Pipeline stage to run: build, simulate or all")
	flag.StringVar(&cfg.InputDir, "i", cfg.InputDir,
		"Directory holding the a1-a6 and a_cov csv files")
	flag.StringVar(&cfg.OutputDir, "o", cfg.OutputDir,
		"Directory for the derived distribution and simulation csv files")
	flag.StringVar(&cfg.ImageDir, "g", cfg.ImageDir,
		"Directory for chart images, empty to skip charts")
	flag.IntVar(&cfg.Days, "n", cfg.Days,
		"Number of days to simulate")
	flag.Uint64Var(&cfg.Seed, "r", cfg.Seed,
		"Random seed for the simulation")
	method := flag.String("a", cfg.Method.String(),
		"Acuity assignment method: categorical or multinomial")

	// parse cli input flags
	flag.Parse()

	cfg.Method, err = arrivalTool.ParseAcuityMethod(*method)
	if err != nil {
		log.Println(err)
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Println(err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	// print settings used
	fmt.Printf("\tMode: %s \n\tInput: %s \n\tOutput: %s \n\tImages: %s \n\tDays: %d \n\tSeed: %d \n\tAcuity Method: %s \n",
		cfg.Mode,
		filepath.Base(cfg.InputDir),
		filepath.Base(cfg.OutputDir),
		cfg.ImageLabel(),
		cfg.Days,
		cfg.Seed,
		cfg.Method)

	// build distributions from raw data
	if cfg.Mode == "build" || cfg.Mode == "all" {
		if err := arrivalTool.BuildDistributions(cfg); err != nil {
			log.Fatal(err)
		}
	}

	// simulate daily arrivals from derived distributions
	if cfg.Mode == "simulate" || cfg.Mode == "all" {
		if err := arrivalTool.SimulateArrivals(cfg); err != nil {
			log.Fatal(err)
		}
	}

	// stop timer and print to console
	elapsed := time.Since(start)
	log.Printf("Elapsed Time: %s", elapsed)
}
