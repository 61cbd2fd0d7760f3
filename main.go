package main

import (
	"log"

	"github.com/alexflint/go-arg"

	"aep/energy"
	"aep/export"
	"aep/fetch"
	"aep/load"
	"aep/transform"
	"aep/validate"
	"aep/warehouse"
)

// Command line arguments for the pipeline stages
type CmdArgs struct {
	Fetch     *fetch.Config     `arg:"subcommand" help:"Download raw observations from the Africa Energy Portal"`
	Transform *transform.Config `arg:"subcommand" help:"Reshape raw observations into wide records"`
	Validate  *validate.Config  `arg:"subcommand" help:"Check the formatted records for data-quality issues"`
	Load      *load.Config      `arg:"subcommand" help:"Load the formatted records into MongoDB"`
	Export    *export.Config    `arg:"subcommand" help:"Export the formatted records to a long-format CSV"`
	Warehouse *warehouse.Config `arg:"subcommand" help:"Copy the formatted records into a Postgres warehouse"`
}

func (CmdArgs) Description() string {
	return `Extracts electricity statistics for African countries from the Africa Energy Portal.
Without a subcommand the whole pipeline runs in order: fetch, transform, validate, load.`
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	args := CmdArgs{}
	arg.MustParse(&args)

	switch {
	case args.Fetch != nil:
		args.Fetch.Execute()
	case args.Transform != nil:
		if err := args.Transform.Execute(); err != nil {
			log.Fatal(err)
		}
	case args.Validate != nil:
		if err := args.Validate.Execute(); err != nil {
			log.Fatal(err)
		}
	case args.Load != nil:
		args.Load.Execute()
	case args.Export != nil:
		if err := args.Export.Execute(); err != nil {
			log.Fatal(err)
		}
	case args.Warehouse != nil:
		args.Warehouse.Execute()
	default:
		runPipeline()
	}
}

// runPipeline chains the four standard stages with the same settings the
// subcommands default to. Fetch and load degrade gracefully on their own;
// transform and validate failures mean the input files are missing or
// corrupt, and there is no point in carrying on.
func runPipeline() {
	fetchCfg := fetch.Config{
		Out:   "africa_energy_data.json",
		Years: energy.NewYearRange(2000, 2022),
	}
	fetchCfg.Execute()

	transformCfg := transform.Config{
		In:    "africa_energy_data.json",
		Out:   "formatted_africa_energy_data.json",
		Years: energy.NewYearRange(2000, 2024),
	}
	if err := transformCfg.Execute(); err != nil {
		log.Fatal(err)
	}

	validateCfg := validate.Config{
		In:    "formatted_africa_energy_data.json",
		Out:   "validation_report.json",
		Years: energy.NewYearRange(2000, 2022),
	}
	if err := validateCfg.Execute(); err != nil {
		log.Fatal(err)
	}

	loadCfg := load.Config{
		In:         "formatted_africa_energy_data.json",
		Database:   "AfricaEnergyDB",
		Collection: "EnergyData",
		BatchSize:  500,
	}
	loadCfg.Execute()
}
