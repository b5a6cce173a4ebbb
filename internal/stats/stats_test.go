package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSimpleReportFormat(t *testing.T) {
	r := NewSimple(10)
	r.Record(12)
	r.Record(9)

	report := r.Report()
	if !strings.Contains(report, "gens:2, alive:9") {
		t.Fatalf("report %q missing generation and population counts", report)
	}
	if !strings.Contains(report, "gen/s") {
		t.Fatalf("report %q missing the rate", report)
	}
}

func TestSimpleReportResetsWindow(t *testing.T) {
	r := NewSimple(0)
	r.Record(1)
	r.Report()

	if r.gensInReport != 0 {
		t.Fatalf("gensInReport = %d after report, expected 0", r.gensInReport)
	}
	if r.gens != 1 {
		t.Fatalf("gens = %d after report, expected 1", r.gens)
	}
	if r.HasReport() {
		t.Fatal("HasReport true immediately after a report")
	}
}

func TestNewSelectsRecorder(t *testing.T) {
	if _, ok := New(0, true).(*CSV); !ok {
		t.Fatal("New(csv=true) did not return a CSV recorder")
	}
	if _, ok := New(0, false).(*Simple); !ok {
		t.Fatal("New(csv=false) did not return a Simple recorder")
	}
}

func TestCSVSave(t *testing.T) {
	r := NewCSV(5)
	r.Record(6)
	r.Record(4)
	r.Record(4)

	path := filepath.Join(t.TempDir(), "stats.csv")
	if err := r.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, expected 4: %q", len(lines), lines)
	}
	if lines[0] != "gen,delta_t,alive" {
		t.Fatalf("header = %q, expected gen,delta_t,alive", lines[0])
	}

	wantAlive := []string{"6", "4", "4"}
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			t.Fatalf("row %d = %q, expected 3 fields", i, line)
		}
		if fields[2] != wantAlive[i] {
			t.Fatalf("row %d alive = %q, expected %q", i, fields[2], wantAlive[i])
		}
	}
}

func TestCSVSaveBadPath(t *testing.T) {
	r := NewCSV(0)
	if err := r.Save(filepath.Join(t.TempDir(), "no", "such", "dir.csv")); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
}
