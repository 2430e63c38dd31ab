package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.solver4all.com/azaryc2s/cvrp"
	"git.solver4all.com/azaryc2s/cvrp/batch"
	"git.solver4all.com/azaryc2s/cvrp/config"
	"git.solver4all.com/azaryc2s/cvrp/metrics"
	"git.solver4all.com/azaryc2s/cvrp/rng"
)

var sizes cvrp.ArrayIntFlags
var rootPos cvrp.ArrayIntFlags
var custPos cvrp.ArrayIntFlags
var demandTypes cvrp.ArrayIntFlags
var routeSizes cvrp.ArrayIntFlags

func main() {
	flag.Var(&sizes, "n", "List of numbers of customers")
	flag.Var(&rootPos, "root", "List of depot positionings (1 = random, 2 = centered, 3 = cornered)")
	flag.Var(&custPos, "cust", "List of customer positionings (1 = random, 2 = clustered, 3 = random-clustered)")
	flag.Var(&demandTypes, "demand", "List of demand distributions (1..7)")
	flag.Var(&routeSizes, "route", "List of average route sizes (1..6)")
	confFile := flag.String("config", "", "TOML or YAML file with a [batch] section. Flags given explicitly override it")
	count := flag.Int("count", 1, "Number of instances per combination")
	seed := flag.Int64("seed", 1, "Seed of the first instance, the following get consecutive seeds")
	stream := flag.String("stream", "python", "Random stream: python (reproduces the published generator) or go")
	workers := flag.Int("workers", 4, "Number of instances generated concurrently")
	outDir := flag.String("out", ".", "Output directory")
	writeJSON := flag.Bool("json", false, "Also write every instance as JSON")
	compress := flag.Bool("compress", false, "Snappy-compress the generated files")
	metricsFile := flag.String("metrics", "", "Write Prometheus metrics of the run to this textfile")

	flag.Parse()

	cfg := config.Default()
	if *confFile != "" {
		var err error
		cfg, err = config.Load(*confFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	b := &cfg.Batch
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			b.Sizes = sizes
		case "root":
			b.RootPos = rootPos
		case "cust":
			b.CustPos = custPos
		case "demand":
			b.DemandTypes = demandTypes
		case "route":
			b.RouteSizes = routeSizes
		case "count":
			b.Count = *count
		case "seed":
			b.BaseSeed = *seed
		case "stream":
			b.Stream = *stream
		case "workers":
			b.Workers = *workers
		case "out":
			b.OutDir = *outDir
		case "json":
			b.JSON = *writeJSON
		case "compress":
			b.Compress = *compress
		case "metrics":
			b.MetricsFile = *metricsFile
		}
	})
	if err := b.Validate(); err != nil {
		log.Fatal(err)
	}

	kind, err := rng.ParseKind(b.Stream)
	if err != nil {
		log.Fatal(err)
	}
	gen, err := cvrp.NewGenerator(kind)
	if err != nil {
		log.Fatal(err)
	}
	sink, err := batch.NewDirSink(b.OutDir, b.Compress)
	if err != nil {
		log.Fatal(err)
	}
	reg := metrics.NewRegistry()
	runner := &batch.Runner{Generator: gen, Sink: sink, Workers: b.Workers, JSON: b.JSON, Metrics: reg}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := batch.Jobs(*b)
	log.Printf("Generating %d instances into %s with %d workers\n", len(jobs), b.OutDir, b.Workers)
	start := time.Now()
	entries, runErr := runner.Run(ctx, jobs)
	for _, e := range entries {
		if e.Error != "" {
			log.Printf("%s: %s\n", e.Name, e.Error)
			continue
		}
		log.Printf("Generated %s (capacity %d, %d vehicles)\n", e.Name, e.Capacity, e.Stats.Vehicles)
	}

	manifest := batch.NewManifest(string(kind), entries)
	path, err := batch.WriteManifest(b.OutDir, manifest)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Run %s finished in %s, %d of %d failed. Manifest: %s\n", manifest.RunID, time.Since(start), manifest.Failed, len(entries), path)

	if b.MetricsFile != "" {
		if err := reg.WriteTextfile(b.MetricsFile); err != nil {
			log.Fatal(err)
		}
	}
	if runErr != nil {
		os.Exit(1)
	}
}
