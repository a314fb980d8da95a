// Command prune projects a canonical table schema to match a requested schema, and prints the
// projected canonical schema as JSON.
//
//	prune --schema.file=table.json --requested.file=requested.json --filter-id=3
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/go-sif/prune/logging"
	"github.com/go-sif/prune/projection"
	"github.com/go-sif/prune/projector"
	"github.com/go-sif/prune/requested"
	"github.com/go-sif/prune/schema"
)

// config is the YAML configuration accepted by --config.file
type config struct {
	LogLevel  string                     `yaml:"log_level"`
	Projector projector.ProjectorOptions `yaml:"projector"`
}

type flags struct {
	schemaFile     string
	requestedFile  string
	requestedArrow string
	filterIDs      []int
	configFile     string
	logLevel       string
}

func newApp(f *flags) *kingpin.Application {
	app := kingpin.New("prune", "Projects a canonical table schema to match a requested schema.")
	app.Flag("schema.file", "Canonical table schema, as JSON.").Required().ExistingFileVar(&f.schemaFile)
	app.Flag("requested.file", "Requested schema, as Spark schema JSON.").ExistingFileVar(&f.requestedFile)
	app.Flag("requested.arrow", "Arrow IPC stream whose schema is the requested schema.").ExistingFileVar(&f.requestedArrow)
	app.Flag("filter-id", "Id of a field referenced by a row filter. Repeatable.").IntsVar(&f.filterIDs)
	app.Flag("config.file", "YAML configuration file.").ExistingFileVar(&f.configFile)
	app.Flag("log.level", "Log level: debug, info, warn or error. Overrides the configuration file.").StringVar(&f.logLevel)
	return app
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var f flags
	app := newApp(&f)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	conf, err := loadConfig(f.configFile)
	if err != nil {
		return err
	}
	if f.logLevel != "" {
		conf.LogLevel = f.logLevel
	}
	logger, err := logging.CreateLogger(stderr, conf.LogLevel)
	if err != nil {
		return err
	}

	canonical, err := readFile(f.schemaFile, schema.ParseJSON)
	if err != nil {
		return fmt.Errorf("Unable to read schema %s: %w", f.schemaFile, err)
	}
	req, err := readRequested(&f)
	if err != nil {
		return err
	}

	p, err := projector.CreateProjector(&conf.Projector, logger, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	projected, err := p.Project(canonical, req, projection.NewFieldIDSet(f.filterIDs...))
	if err != nil {
		level.Error(logger).Log("msg", "projection failed", "err", err)
		return err
	}
	level.Debug(logger).Log("msg", "projected schema", "columns", len(projected.Columns()), "unchanged", projected == canonical)

	out, err := schema.ToJSON(projected)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

func loadConfig(path string) (*config, error) {
	conf := &config{LogLevel: "info"}
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("Unable to parse configuration %s: %w", path, err)
	}
	return conf, nil
}

func readRequested(f *flags) (*requested.StructType, error) {
	switch {
	case f.requestedFile != "" && f.requestedArrow != "":
		return nil, fmt.Errorf("Only one of --requested.file and --requested.arrow may be given")
	case f.requestedFile != "":
		req, err := readFile(f.requestedFile, requested.ParseJSON)
		if err != nil {
			return nil, fmt.Errorf("Unable to read requested schema %s: %w", f.requestedFile, err)
		}
		return req, nil
	case f.requestedArrow != "":
		return readArrowSchema(f.requestedArrow)
	default:
		return nil, fmt.Errorf("One of --requested.file or --requested.arrow is required")
	}
}

func readFile[T any](path string, parse func([]byte) (T, error)) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, err
	}
	return parse(data)
}

func readArrowSchema(path string) (*requested.StructType, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	rdr, err := ipc.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("Unable to read Arrow stream %s: %w", path, err)
	}
	defer rdr.Release()
	return requested.FromArrowSchema(rdr.Schema())
}
