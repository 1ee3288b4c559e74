package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gatewayops/gwshift/internal/config"
	"github.com/gatewayops/gwshift/internal/gateway"
	"github.com/gatewayops/gwshift/internal/importer"
	"github.com/gatewayops/gwshift/internal/logger"
	"github.com/gatewayops/gwshift/internal/model"
	"github.com/gatewayops/gwshift/internal/source"
	"github.com/gatewayops/gwshift/internal/split"
	"github.com/gatewayops/gwshift/internal/transform"
	"github.com/gatewayops/gwshift/internal/tui"
)

type migrateOptions struct {
	ExportPath     string
	ProfilePath    string
	TargetURL      string
	AuthToken      string
	ScratchDir     string
	Workers        int
	Timeout        int
	DryRun         bool
	Verbose        bool
	NonInteractive bool
}

var migrateCmdRunner = runMigrate

func newMigrateCmd(root *rootFlags) *cobra.Command {
	opts := migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Transform a source gateway export and import it into the target gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = root.dryRun
			opts.Verbose = root.verbose
			opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))

			settings, err := resolveSettings(cmd, &opts)
			if err != nil {
				return err
			}

			return migrateCmdRunner(opts, settings)
		},
	}

	cmd.Flags().StringVarP(&opts.ExportPath, "export", "e", "", "Path to the source gateway bulk export (JSON)")
	cmd.MarkFlagRequired("export") //nolint:errcheck
	cmd.Flags().StringVarP(&opts.ProfilePath, "profile", "p", "", "Path to a YAML profile holding target settings")
	cmd.Flags().StringVar(&opts.TargetURL, "target-url", "", "Target gateway management API base URL")
	cmd.Flags().StringVar(&opts.AuthToken, "auth-token", "", "Authorization token for the management API")
	cmd.Flags().StringVarP(&opts.ScratchDir, "out", "o", config.DefaultScratchDir, "Directory for transform artifacts")
	cmd.Flags().IntVar(&opts.Workers, "workers", config.DefaultWorkers, "Concurrent imports (1 = sequential)")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", config.DefaultRequestTimeoutSeconds, "Per-request timeout in seconds")

	return cmd
}

// resolveSettings layers flag overrides on top of the optional profile file
// and validates the result. Flags win over the profile, the profile wins
// over defaults.
func resolveSettings(cmd *cobra.Command, opts *migrateOptions) (config.Settings, error) {
	settings := config.Default()

	if opts.ProfilePath != "" {
		loaded, err := config.LoadProfile(opts.ProfilePath)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("target-url") {
		settings.TargetURL = opts.TargetURL
	}
	if flags.Changed("auth-token") {
		settings.AuthToken = opts.AuthToken
	}
	if flags.Changed("out") {
		settings.ScratchDir = opts.ScratchDir
	}
	if flags.Changed("workers") {
		settings.Workers = opts.Workers
	}
	if flags.Changed("timeout") {
		settings.RequestTimeoutSeconds = opts.Timeout
	}

	settings.DryRun = opts.DryRun
	settings.Verbose = opts.Verbose

	if err := settings.Validate(); err != nil {
		return settings, err
	}

	return settings, nil
}

func runMigrate(opts migrateOptions, settings config.Settings) error {
	level := "info"
	if settings.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: !opts.NonInteractive})
	if err != nil {
		return err
	}

	export, err := source.ParseExport(opts.ExportPath)
	if err != nil {
		return err
	}

	res := transform.Apply(export)
	for _, failure := range res.Failures {
		log.Error(failure.Err, "source record failed transformation")
	}

	units := split.Split(res.Definitions)
	if err := split.WriteArtifacts(settings.ScratchDir, res.Definitions, units); err != nil {
		return err
	}
	log.WithFields(map[string]any{"dir": settings.ScratchDir, "units": len(units)}).Info("transform artifacts written")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	titles := make([]string, len(units))
	for i, unit := range units {
		titles[i] = unit.Title
	}

	modelState := tui.NewModel(filepath.Base(opts.ExportPath), titles, opts.NonInteractive)
	interactive := !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	events := importer.Events{}
	if interactive {
		program = tea.NewProgram(modelState)
		go func() {
			_, programErr = program.Run()
			close(done)
		}()

		// Live updates go straight to the program; Send is safe from
		// worker goroutines.
		events = importer.Events{
			UnitStarted: func(title string) {
				program.Send(tui.UnitStartMsg{Title: title, Time: time.Now()})
			},
			UnitFinished: func(res model.UnitResult) {
				program.Send(tui.UnitCompleteMsg{Result: res})
			},
		}
	}

	client := gateway.NewClient(gateway.Options{
		BaseURL:   settings.TargetURL,
		AuthToken: settings.AuthToken,
		Timeout:   settings.RequestTimeout(),
	})

	coord := importer.New(client, log, importer.Options{
		Workers: settings.Workers,
		DryRun:  settings.DryRun,
		Events:  events,
	})

	batch, fatal := coord.Run(ctx, units)

	final := &model.BatchResult{}
	for _, failure := range res.Failures {
		result := failureResult(failure)
		final.Record(result)
		dispatchTuiMessage(interactive, program, &modelState, tui.UnitCompleteMsg{Result: result})
	}
	for _, result := range batch.Results {
		final.Record(result)
		dispatchTuiMessage(interactive, program, &modelState, tui.UnitCompleteMsg{Result: result})
	}
	final.Aborted = batch.Aborted

	if fatal != nil {
		dispatchTuiMessage(interactive, program, &modelState, tui.AbortMsg{Err: fatal})
	}

	if interactive {
		if program != nil {
			program.Send(tea.QuitMsg{})
		}
		<-done
		if programErr != nil {
			return programErr
		}
	} else {
		fmt.Fprintln(os.Stdout, modelState.View())
	}

	log.WithFields(map[string]any{
		"imported": final.Imported,
		"skipped":  final.Skipped,
		"failed":   final.Failed,
		"total":    final.Total,
	}).Info("batch complete")

	if fatal != nil {
		return fatal
	}
	if final.Failed > 0 {
		return fmt.Errorf("%d unit(s) failed: %s", final.Failed, strings.Join(final.FailedTitles(), ", "))
	}

	return nil
}

func failureResult(failure transform.Failure) model.UnitResult {
	title := failure.Name
	if title == "" {
		title = fmt.Sprintf("record[%d]", failure.Index)
	}
	return model.UnitResult{
		Title:     title,
		Status:    model.StatusFailed,
		Message:   failure.Err.Error(),
		Error:     failure.Err,
		Timestamp: time.Now(),
	}
}

func dispatchTuiMessage(interactive bool, program *tea.Program, state *tui.Model, msg tea.Msg) {
	if interactive {
		if program != nil {
			program.Send(msg)
		}
		return
	}

	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
