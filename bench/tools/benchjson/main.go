// Package main converts `go test -bench` output of the hashy benchmarks to JSON.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
)

// BenchResult represents a single benchmark result.
type BenchResult struct {
	Name     string             `json:"name"`
	Category string             `json:"category"` // "steptable", "perfecttable" or "other"
	Metrics  map[string]float64 `json:"metrics"`
}

// BenchSummary represents all benchmark results.
type BenchSummary struct {
	Timestamp  string        `json:"timestamp"`
	CommitID   string        `json:"commit_id"`
	Branch     string        `json:"branch"`
	GoVersion  string        `json:"go_version"`
	SystemInfo string        `json:"system_info,omitempty"`
	Results    []BenchResult `json:"results"`
}

var (
	benchLine  = regexp.MustCompile(`Benchmark(\w+)(?:-\d+)?\s+(\d+)\s+(\d+\.?\d*)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)
	sysInfo    = regexp.MustCompile(`(?s)goos:.+?goarch:[^\n]+`)
	goVersionR = regexp.MustCompile(`go\d+\.\d+(?:\.\d+)?`)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: benchjson <benchmark_output_file> [commit_id] [branch_name]")
		os.Exit(1)
	}

	commitID := "unknown"
	branch := "unknown"
	if len(os.Args) >= 3 {
		commitID = os.Args[2]
	}
	if len(os.Args) >= 4 {
		branch = os.Args[3]
	}

	outputPath, err := convert(os.Args[1], commitID, branch)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("JSON benchmark results written to %s\n", outputPath)
}

func convert(inputFile, commitID, branch string) (string, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", errors.Wrap(err, "reading benchmark output failed")
	}

	summary := parse(string(data))
	summary.Timestamp = time.Now().Format(time.RFC3339)
	summary.CommitID = commitID
	summary.Branch = branch

	jsonData, err := sonnet.Marshal(summary)
	if err != nil {
		return "", errors.Wrap(err, "encoding summary failed")
	}

	outputPath := strings.TrimSuffix(inputFile, ".txt") + ".json"
	if err := os.WriteFile(outputPath, jsonData, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s failed", outputPath)
	}
	return outputPath, nil
}

func parse(content string) BenchSummary {
	summary := BenchSummary{
		SystemInfo: strings.TrimSpace(sysInfo.FindString(content)),
		GoVersion:  goVersionR.FindString(content),
		Results:    []BenchResult{},
	}

	for _, matches := range benchLine.FindAllStringSubmatch(content, -1) {
		ops, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		metrics := map[string]float64{
			"operations": float64(ops),
			"ns_per_op":  nsPerOp,
		}
		if nsPerOp > 0 {
			metrics["ops_per_sec"] = 1_000_000_000 / nsPerOp
		}
		if matches[4] != "" {
			bytesPerOp, _ := strconv.Atoi(matches[4])
			metrics["bytes_per_op"] = float64(bytesPerOp)
		}
		if matches[5] != "" {
			allocsPerOp, _ := strconv.Atoi(matches[5])
			metrics["allocs_per_op"] = float64(allocsPerOp)
		}

		summary.Results = append(summary.Results, BenchResult{
			Name:     matches[1],
			Category: category(matches[1]),
			Metrics:  metrics,
		})
	}

	return summary
}

func category(name string) string {
	switch {
	case strings.HasPrefix(name, "StepTable"):
		return "steptable"
	case strings.HasPrefix(name, "PerfectTable"):
		return "perfecttable"
	default:
		return "other"
	}
}
