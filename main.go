package main

//	@title						Warehouse WiFi Channel Planner API
//	@version					1.0
//	@description				Plans access-point placement, channel assignment and transmit power for large open-plan facilities, reconciling coverage-driven and capacity-driven AP counts.
//	@BasePath					/api/v1/planner
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Global configuration loaded from environment at startup
var (
	serverAddr     string
	reportDir      string
	middlewareAuth bool
	authKey        string
	logger         *zap.Logger
)

// Shared planner components. The catalog, estimator and sampler are
// immutable configuration; the cache, store and worker pool are the only
// shared mutable state in the process.
var (
	channelCatalogInstance      = NewChannelCatalog()
	capacityEstimatorInstance   = NewCapacityEstimator()
	interferenceSamplerInstance = NewInterferenceSampler(rand.New(rand.NewSource(time.Now().UnixNano())))
	plannerInstance             = NewPlanner(channelCatalogInstance, capacityEstimatorInstance, interferenceSamplerInstance)
	reportCacheInstance         = newReportCache(DefaultCacheTimeout)
	reportStoreInstance         *reportStore
	planWorkerPool              = &workerPool{workers: DefaultWorkerCount, queue: make(chan task, DefaultQueueSize)}
)

func main() {
	if err := initLoggerWrapper(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCommand().Execute(); err != nil {
		logger.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}

// newRootCommand builds the CLI: an HTTP server, a one-shot planner run
// and a grid visualizer over persisted reports.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "channel-planner",
		Short:         "WiFi channel and capacity planner for warehouse deployments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the planner HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServer(DefaultServerAddr)
		},
	}

	var scenarioPath, band string
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Run a planning scenario and persist the optimization report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, scenarioPath, band)
		},
	}
	planCmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario YAML file (default: bundled fulfillment-center example)")
	planCmd.Flags().StringVar(&band, "band", "", "band override: 2.4GHz or 5GHz")

	var facility string
	visualizeCmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render the channel grid from a persisted report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVisualize(cmd, facility)
		},
	}
	visualizeCmd.Flags().StringVar(&facility, "facility", DefaultScenario().Name, "facility name of the report to render")

	root.AddCommand(serveCmd, planCmd, visualizeCmd)
	return root
}

// runPlan executes one planning run from a scenario file (or the bundled
// example), prints the report and persists it for the visualizer.
func runPlan(cmd *cobra.Command, scenarioPath, band string) error {
	store, err := openReportStore()
	if err != nil {
		return err
	}

	scenario := DefaultScenario()
	if scenarioPath != "" {
		scenario, err = LoadScenario(scenarioPath)
		if err != nil {
			return err
		}
	}
	if band != "" {
		scenario.Band = band
	}

	cmd.Printf("\nAnalyzing wireless requirements for %s...\n", scenario.Name)

	report, err := plannerInstance.BuildReport(scenario.PlanRequest())
	if err != nil {
		return err
	}

	// Persistence failures are fatal here: the visualizer depends on the
	// written file.
	if err := store.Save(report); err != nil {
		return err
	}

	cmd.Print(DisplayReport(report))
	cmd.Printf("\nFull report saved to: %s\n", store.path(report.Facility))
	return nil
}

// runVisualize renders the persisted channel grid for a facility. A
// missing report is reported as a message, not an error.
func runVisualize(cmd *cobra.Command, facility string) error {
	store, err := openReportStore()
	if err != nil {
		return err
	}

	report, err := store.Load(facility)
	if err != nil {
		if errors.Is(err, ErrNoReport) {
			cmd.Println(MsgRunOptimizerFirst)
			return nil
		}
		return err
	}

	cmd.Print(RenderChannelGrid(report))
	return nil
}

// openReportStore initializes the shared report store from environment
// configuration.
func openReportStore() (*reportStore, error) {
	reportDir = getEnv(EnvReportDir, DefaultReportDir)
	store, err := newReportStore(reportDir)
	if err != nil {
		return nil, err
	}
	reportStoreInstance = store
	return store, nil
}
