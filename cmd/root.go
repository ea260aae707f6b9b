package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cpu-scheduler-simulator/config"
)

var (
	verbose    bool
	configPath string
)

// base of all cli commands
var rootCLI = &cobra.Command{
	Use:   "cpusim",
	Short: "Simulate CPU scheduling algorithms over a workload",
	Long: `cpusim runs FCFS, SJF, SRTF, Round Robin and both Priority schedulers
over the same workload and compares waiting time, turnaround, throughput,
CPU utilization and context switches.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func ExecuteCLI() {
	if err := rootCLI.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCLI.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scheduler decisions")
	rootCLI.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml)")
}

// loadConfig reads the config file after cobra flags were bound into viper.
func loadConfig() (*config.SchedulerConfig, error) {
	return config.Load(viper.GetViper(), configPath)
}
