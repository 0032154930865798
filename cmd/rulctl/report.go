package main

import (
	"context"
	"fmt"
	"io"

	"engine_rul/internal/charts"
	"engine_rul/internal/models"
	"engine_rul/internal/repository"
	"engine_rul/internal/telemetry"

	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var (
		sensor  int
		engine  int
		dataSrc string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the detailed chart of one sensor for one engine",
		Long: `Render one sensor trace of one engine with a least-squares trend line,
range and mean in the subtitle and the final value annotated, then print
the summary statistics. The chart is written to the chart directory under
the same name the dashboard uses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := telemetry.LoadFile(dataSrc)
			if err != nil {
				return err
			}
			repos, err := repository.NewDirRepository(outDir)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), cmd.OutOrStdout(), data, repos.Artifacts, sensor, engine)
		},
	}

	cmd.Flags().IntVar(&sensor, "sensor", 3, "Sensor number (1-21)")
	cmd.Flags().IntVar(&engine, "engine", 5, "Engine id")
	cmd.Flags().StringVar(&dataSrc, "data", "./data/CMaps/train_FD001.txt", "Telemetry file")
	cmd.Flags().StringVar(&outDir, "out", "chart", "Chart directory")
	return cmd
}

func runReport(ctx context.Context, w io.Writer, data telemetry.Dataset, store repository.ArtifactRepo, sensor, engine int) error {
	t, ok := data.Table()
	if !ok {
		return fmt.Errorf("no telemetry loaded")
	}
	if !t.HasSensorColumn(telemetry.SensorColumn(sensor)) {
		return fmt.Errorf("unknown sensor_%d", sensor)
	}
	rows := t.RowsForEngine(engine)
	if len(rows) == 0 {
		return fmt.Errorf("no data for engine %d", engine)
	}

	spec, sum, err := charts.SensorReport(sensor, engine, rows)
	if err != nil {
		return err
	}
	html, err := charts.RenderLine(spec)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	name := models.SensorForEngine(sensor, engine).ArtifactName()
	if err := store.Put(ctx, name, html); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}

	fmt.Fprintf(w, "Chart saved as %s\n", name)
	fmt.Fprintf(w, "Sensor %d statistics for Engine %d:\n", sensor, engine)
	fmt.Fprintf(w, "Total Cycles: %d\n", sum.Cycles)
	fmt.Fprintf(w, "Value Range: %.3f - %.3f\n", sum.Min, sum.Max)
	fmt.Fprintf(w, "Average Value: %.3f\n", sum.Mean)
	fmt.Fprintf(w, "Final Value: %.3f\n", sum.Final)
	return nil
}
