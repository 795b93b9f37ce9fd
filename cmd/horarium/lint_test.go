package main

import (
	"os"
	"path/filepath"
	"testing"
)

const validChartYAML = `
id: job-offer
question: "Will I get the job?"
aspect_timeline:
  - type: direct
    status: applying
`

const badShapeChartYAML = `
id: broken
aspect_timeline:
  - type: direct
    status: applying
  - {}
`

func writeChart(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write chart file: %v", err)
	}
	return path
}

func TestLintChartsValidFile(t *testing.T) {
	lintFlags.file = writeChart(t, "valid.yaml", validChartYAML)
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintCharts(nil, []string{}); err != nil {
		t.Errorf("lintCharts() with valid file returned error: %v", err)
	}
}

func TestLintChartsShapeError(t *testing.T) {
	lintFlags.file = writeChart(t, "broken.yaml", badShapeChartYAML)
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintCharts(nil, []string{}); err == nil {
		t.Error("lintCharts() with malformed timeline should return error")
	}
}

func TestLintChartsNonexistentFile(t *testing.T) {
	lintFlags.file = filepath.Join(t.TempDir(), "nonexistent.yaml")
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintCharts(nil, []string{}); err == nil {
		t.Error("lintCharts() with nonexistent file should return error")
	}
}

func TestLintChartsNoFileOrDir(t *testing.T) {
	lintFlags.file = ""
	lintFlags.dir = ""
	lintFlags.format = "text"

	if err := lintCharts(nil, []string{}); err == nil {
		t.Error("lintCharts() without --file or --dir should return error")
	}
}

func TestLintChartsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(validChartYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.yml"), []byte(validChartYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	lintFlags.file = ""
	lintFlags.dir = dir
	lintFlags.format = "text"

	if err := lintCharts(nil, []string{}); err != nil {
		t.Errorf("lintCharts() with valid directory returned error: %v", err)
	}
}
