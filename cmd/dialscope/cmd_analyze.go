package main

import (
    "fmt"
    "io"
    "os"
    "time"

    "github.com/spf13/cobra"

    "dialscope/internal/adapters/phonenum"
    "dialscope/internal/adapters/render"
    "dialscope/internal/domain"
    "dialscope/internal/probe"
    "dialscope/internal/services/analyzer"
    "dialscope/internal/services/artifacts"
)

var (
    analyzeRegion       string
    analyzeFormat       string
    analyzeOutput       string
    analyzeVerify       bool
    analyzeProbeTimeout int
)

var analyzeCmd = &cobra.Command{
    Use:   "analyze <phone-number>",
    Short: "Analyze one phone number and print the report",
    Example: `  dialscope analyze +14155552671
  dialscope analyze 4155552671 --region US
  dialscope analyze +14155552671 --format json --output report.json
  dialscope analyze +14155552671 --verify`,
    Args: cobra.ExactArgs(1),
    RunE: runAnalyze,
}

func init() {
    analyzeCmd.Flags().StringVar(&analyzeRegion, "region", "", "region hint (e.g. US, GB) for numbers without a leading +")
    analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "text", "output format: text, json or csv")
    analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the report to a file instead of stdout")
    analyzeCmd.Flags().BoolVar(&analyzeVerify, "verify", false, "run best-effort presence probes against the report's links")
    analyzeCmd.Flags().IntVar(&analyzeProbeTimeout, "probe-timeout", 5, "per-probe timeout in seconds")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
    renderer, err := rendererFor(analyzeFormat)
    if err != nil { return err }

    svc := analyzer.New(phonenum.New(), artifacts.Default())
    report, err := svc.Analyze(cmd.Context(), args[0], analyzeRegion)
    if err != nil {
        return err
    }

    if analyzeVerify {
        prober := probe.New(time.Duration(analyzeProbeTimeout) * time.Second)
        report = probe.Apply(cmd.Context(), prober, report)
    }

    out := io.Writer(os.Stdout)
    if analyzeOutput != "" {
        f, err := os.Create(analyzeOutput)
        if err != nil { return err }
        defer f.Close()
        out = f
    }
    return renderer(out, report)
}

func rendererFor(format string) (func(io.Writer, domain.AnalysisReport) error, error) {
    switch format {
    case "text":
        return render.Text, nil
    case "json":
        return render.JSON, nil
    case "csv":
        return render.CSV, nil
    default:
        return nil, fmt.Errorf("unknown format %q (want text, json or csv)", format)
    }
}
