package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"cpu-scheduler-simulator/internal/render"
	"cpu-scheduler-simulator/internal/requests"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
)

var format string

var runCmd = &cobra.Command{
	Use:   "run [workload.csv]",
	Short: "Run every algorithm on a workload file and print the results",
	Long: `Reads a CSV workload (id,arrival,burst,priority with a header row; priority is
high, normal or low) and runs all six scheduling algorithms on it. The workload
path may also come from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := cfg.WorkloadPath
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return errors.New("no workload file given")
		}

		workload, err := requests.LoadCSVFile(path)
		if err != nil {
			return err
		}

		results, runErr := schedulers.ScheduleAll(workload, cfg.Options())
		if runErr != nil && !errors.Is(runErr, schedulers.ErrPartialResults) {
			return runErr
		}
		schedulers.SortByAlgorithm(results)

		if err := printResults(cmd.OutOrStdout(), format, results); err != nil {
			return err
		}
		if cfg.ReportDir != "" {
			paths, err := render.WriteReports(cfg.ReportDir, results)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.ErrOrStderr(), "wrote", p)
			}
		}
		return runErr
	},
}

func printResults(w io.Writer, format string, results []responses.ScheduleResponse) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	case "table":
		for _, r := range results {
			render.Title(w, r.Algorithm)
			render.Gantt(w, r.Timeline)
			fmt.Fprintln(w)
			render.Schedule(w, r)
			fmt.Fprintln(w, r.Report)
		}
		render.Summary(w, results)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (table, json, yaml)", format)
	}
}

func init() {
	runCmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, yaml)")
	runCmd.Flags().IntP("quantum", "q", 0, "round robin time quantum")
	runCmd.Flags().Float64P("context-switch", "s", 0, "context switch duration used for CPU utilization")
	runCmd.Flags().StringP("out", "o", "", "directory to write one report file per algorithm")

	_ = viper.BindPFlag("scheduler.round_robin.time_quantum", runCmd.Flags().Lookup("quantum"))
	_ = viper.BindPFlag("scheduler.context_switch_duration", runCmd.Flags().Lookup("context-switch"))
	_ = viper.BindPFlag("report.dir", runCmd.Flags().Lookup("out"))

	rootCLI.AddCommand(runCmd)
}
