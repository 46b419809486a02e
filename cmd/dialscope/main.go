package main

import (
    "fmt"
    "os"

    "github.com/spf13/cobra"
)

const (
    exitSuccess = 0
    exitError   = 1
)

var rootCmd = &cobra.Command{
    Use:          "dialscope",
    Short:        "Phone number OSINT aggregator",
    Long:         "dialscope validates a phone number and expands it into a catalogue of investigation artifacts: search dorks, platform links and heuristic risk flags.",
    SilenceUsage: true,
}

func main() {
    rootCmd.AddCommand(analyzeCmd)
    if err := rootCmd.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(exitError)
    }
    os.Exit(exitSuccess)
}
