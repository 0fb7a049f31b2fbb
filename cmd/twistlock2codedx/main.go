package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/codedx/twistlock2codedx/pkg/etc"
	"github.com/codedx/twistlock2codedx/pkg/ext"
	"github.com/codedx/twistlock2codedx/pkg/metrics"
	"github.com/codedx/twistlock2codedx/pkg/scan"
)

var (
	// Default wise GoReleaser sets three ldflags:
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetLevel(etc.GetLogLevel())
	log.SetReportCaller(false)

	info := etc.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	config, err := etc.GetConfig()
	if err != nil {
		log.Fatalf("Error: getting config: %v", err)
	}

	if err := newRootCmd(info, config).Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newRootCmd(info etc.BuildInfo, config etc.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twistlock2codedx --output FILE [input files...]",
		Short: "Convert Twistlock vulnerability CSV exports into a Code Dx XML report",
		Long: `Converts Twistlock "Vulnerability Hosts" and "Vulnerability Images" CSV exports
into a single Code Dx XML findings report. The export type of every input file
is detected from its first header column.`,
		Version:       fmt.Sprintf("%s (commit %s, built at %s)", info.Version, info.Commit, info.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.InputFiles = args
			return run(info, config)
		},
	}

	cmd.Flags().StringVarP(&config.Output, "output", "o", config.Output, "output Code Dx XML file")
	cmd.Flags().StringVarP(&config.Filter, "filter", "f", config.Filter, "filter results (currently unused)")
	cmd.Flags().StringVar(&config.MetricsFile, "metrics-file", config.MetricsFile, "write conversion metrics in Prometheus text format to this file")
	cmd.Flags().StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format, text or json")

	return cmd
}

func run(info etc.BuildInfo, config etc.Config) error {
	log.SetFormatter(etc.GetLogFormatter(config.LogFormat))
	log.WithFields(log.Fields{
		"version":  info.Version,
		"commit":   info.Commit,
		"built_at": info.Date,
	}).Debug("Starting twistlock2codedx")

	if err := etc.Check(config); err != nil {
		return fmt.Errorf("checking config: %w", err)
	}

	collector := metrics.NewCollector()
	controller := scan.NewController(ext.DefaultAmbassador, scan.NewTransformer(&scan.SystemClock{}), collector)

	if err := controller.Convert(config.InputFiles, config.Output); err != nil {
		return err
	}

	if config.MetricsFile != "" {
		if err := collector.WriteToTextfile(config.MetricsFile); err != nil {
			return err
		}
	}

	log.Info("Done")
	return nil
}
