package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gatewayops/gwshift/internal/config"
	"github.com/gatewayops/gwshift/internal/logger"
	"github.com/gatewayops/gwshift/internal/source"
	"github.com/gatewayops/gwshift/internal/split"
	"github.com/gatewayops/gwshift/internal/transform"
)

type transformOptions struct {
	ExportPath string
	ScratchDir string
	Verbose    bool
}

var transformCmdRunner = runTransform

func newTransformCmd(root *rootFlags) *cobra.Command {
	opts := transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform and split an export without touching the target gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			return transformCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ExportPath, "export", "e", "", "Path to the source gateway bulk export (JSON)")
	cmd.MarkFlagRequired("export") //nolint:errcheck
	cmd.Flags().StringVarP(&opts.ScratchDir, "out", "o", config.DefaultScratchDir, "Directory for transform artifacts")

	return cmd
}

func runTransform(opts transformOptions) error {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: term.IsTerminal(int(os.Stderr.Fd()))})
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
	if err := split.WriteArtifacts(opts.ScratchDir, res.Definitions, units); err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"dir":      opts.ScratchDir,
		"units":    len(units),
		"failures": len(res.Failures),
	}).Info("transform artifacts written")

	for _, unit := range units {
		fmt.Fprintf(os.Stdout, "%s\t%s\n", unit.Title, unit.FileName)
	}

	if len(res.Failures) > 0 {
		return fmt.Errorf("%d source record(s) failed transformation", len(res.Failures))
	}

	return nil
}
