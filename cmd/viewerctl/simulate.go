package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/seqsense/modelviewer/config"
	"github.com/seqsense/modelviewer/snapshot"
	"github.com/seqsense/modelviewer/viewer"
)

var errStepFormat = errors.New("step must be <seconds>=<command>")

func newSimulateCmd() *cobra.Command {
	var (
		fps      float64
		duration float64
		stepArgs []string
		format   string
		plot     bool
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "run the camera driver headlessly and print the trajectory",
		Example: `  viewerctl simulate --time 8 --at 1=tour --at 5="preset Top" --plot
  viewerctl simulate --format csv --out ./traces`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			steps, err := parseSteps(stepArgs)
			if err != nil {
				return err
			}
			c := viewer.NewConsole(viewer.New(cfg, logPrint))
			samples, err := viewer.Record(c, fps, duration, steps)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if plot {
				buf.WriteString(plotSamples(samples))
				buf.WriteString("\n")
			} else if err := writeSamples(&buf, samples, format); err != nil {
				return err
			}
			if outDir == "" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			ext := format
			if plot {
				ext = "txt"
			}
			name := snapshot.Filename("camera-trace", time.Now(), ext)
			return snapshot.Export(snapshot.DirSaver{Dir: outDir}, buf.Bytes(), name, logPrint)
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 60, "frames per second")
	cmd.Flags().Float64Var(&duration, "time", 5, "duration in seconds")
	cmd.Flags().StringArrayVar(&stepArgs, "at", nil, "command to run at a time, <seconds>=<command>")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot camera coordinates instead of printing samples")
	cmd.Flags().StringVar(&outDir, "out", "", "save the output into this directory")
	return cmd
}

func parseSteps(args []string) ([]viewer.Step, error) {
	var steps []viewer.Step
	for _, a := range args {
		at, line, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(line) == "" {
			return nil, fmt.Errorf("%q: %w", a, errStepFormat)
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(at), 64)
		if err != nil || t < 0 {
			return nil, fmt.Errorf("%q: %w", a, errStepFormat)
		}
		steps = append(steps, viewer.Step{At: t, Line: strings.TrimSpace(line)})
	}
	return steps, nil
}

type jsonSample struct {
	T        float64    `json:"t"`
	Mode     string     `json:"mode"`
	Position [3]float32 `json:"position"`
}

func writeSamples(w io.Writer, samples []viewer.Sample, format string) error {
	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "T\tMODE\tX\tY\tZ")
		for _, s := range samples {
			p := s.Pose.Position
			fmt.Fprintf(tw, "%.3f\t%s\t%.3f\t%.3f\t%.3f\n", s.T, s.Mode, p[0], p[1], p[2])
		}
		return tw.Flush()
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"t", "mode", "x", "y", "z"}); err != nil {
			return err
		}
		for _, s := range samples {
			p := s.Pose.Position
			if err := cw.Write([]string{
				strconv.FormatFloat(s.T, 'f', 4, 64),
				s.Mode.String(),
				strconv.FormatFloat(float64(p[0]), 'f', 4, 32),
				strconv.FormatFloat(float64(p[1]), 'f', 4, 32),
				strconv.FormatFloat(float64(p[2]), 'f', 4, 32),
			}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "json":
		out := make([]jsonSample, 0, len(samples))
		for _, s := range samples {
			out = append(out, jsonSample{T: s.T, Mode: s.Mode.String(), Position: s.Pose.Position})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// plotSamples draws x (red), y (green) and z (blue) over time.
func plotSamples(samples []viewer.Sample) string {
	if len(samples) == 0 {
		return ""
	}
	series := make([][]float64, 3)
	for _, s := range samples {
		for i := range series {
			series[i] = append(series[i], float64(s.Pose.Position[i]))
		}
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption("camera position"),
	)
}
