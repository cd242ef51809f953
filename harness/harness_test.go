package harness

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	router "github.com/FrenchMajesty/agent-router"
)

func newBaselineEngine(t *testing.T) *router.Engine {
	t.Helper()
	engine, err := router.NewEngine(router.Config{})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestRunDefaultCorpusMeetsTarget(t *testing.T) {
	// Any lexicon or rule change that drops the built-in corpus below the
	// accuracy floor must fail here.
	engine := newBaselineEngine(t)

	report, err := Run(context.Background(), engine, DefaultCorpus(), DefaultTarget)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Accuracy < DefaultTarget {
		for _, miss := range report.Misses {
			t.Logf("miss: %q expected %s, got %s", miss.Text, miss.Expected, miss.Got)
		}
		t.Fatalf("accuracy = %.1f%%, want >= %.1f%%", report.Accuracy, DefaultTarget)
	}
	if !report.Passed {
		t.Error("Passed = false with accuracy above target")
	}
	if report.Total != len(DefaultCorpus()) {
		t.Errorf("Total = %d, want %d", report.Total, len(DefaultCorpus()))
	}

	perKindTotal := 0
	for _, stats := range report.PerKind {
		perKindTotal += stats.Total
	}
	if perKindTotal != report.Total {
		t.Errorf("per-kind totals sum to %d, want %d", perKindTotal, report.Total)
	}
}

func TestDefaultCorpusCoversAllKinds(t *testing.T) {
	seen := make(map[router.AgentKind]int)
	for _, c := range DefaultCorpus() {
		seen[c.Expected]++
	}
	for _, kind := range router.AgentKinds {
		if seen[kind] < 3 {
			t.Errorf("corpus has %d cases for %s, want at least 3", seen[kind], kind)
		}
	}
}

func TestRunRecordsMisses(t *testing.T) {
	engine := newBaselineEngine(t)

	cases := []Case{
		{Text: "buy laptop on amazon", Expected: router.AgentShopping},
		{Text: "xyzzy plugh", Expected: router.AgentShopping}, // no signal: routes to the default kind
	}

	report, err := Run(context.Background(), engine, cases, 90)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Correct != 1 || report.Total != 2 {
		t.Errorf("Correct/Total = %d/%d, want 1/2", report.Correct, report.Total)
	}
	if report.Passed {
		t.Error("Passed = true at 50%% against a 90%% target")
	}
	if len(report.Misses) != 1 {
		t.Fatalf("Misses = %d, want 1", len(report.Misses))
	}
	miss := report.Misses[0]
	if miss.Text != "xyzzy plugh" || miss.Got != router.AgentResearch {
		t.Errorf("miss = %+v, want the no-signal case routed to research", miss)
	}
	if got := report.Confusion[router.AgentShopping][router.AgentResearch]; got != 1 {
		t.Errorf("Confusion[shopping][research] = %d, want 1", got)
	}
	if got := report.Confusion[router.AgentShopping][router.AgentShopping]; got != 1 {
		t.Errorf("Confusion[shopping][shopping] = %d, want 1", got)
	}
}

func TestRunValidation(t *testing.T) {
	engine := newBaselineEngine(t)
	ctx := context.Background()

	if _, err := Run(ctx, engine, nil, 80); err == nil {
		t.Error("Run() error = nil for empty corpus, want error")
	}

	bad := []Case{{Text: "do things", Expected: router.AgentKind("gaming")}}
	if _, err := Run(ctx, engine, bad, 80); err == nil || !strings.Contains(err.Error(), "gaming") {
		t.Errorf("Run() error = %v, want unknown-kind error", err)
	}
}

func TestLoadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	content := `- text: navigate to example.com
  expected: navigation
- text: buy a new phone
  expected: shopping
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cases, err := LoadCorpus(path)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("LoadCorpus() = %d cases, want 2", len(cases))
	}
	if cases[0].Expected != router.AgentNavigation {
		t.Errorf("cases[0].Expected = %s, want %s", cases[0].Expected, router.AgentNavigation)
	}
}

func TestLoadCorpusErrors(t *testing.T) {
	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadCorpus() error = nil for missing file, want error")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCorpus(empty); err == nil {
		t.Error("LoadCorpus() error = nil for empty corpus, want error")
	}
}

func TestReportSaveFile(t *testing.T) {
	engine := newBaselineEngine(t)

	report, err := Run(context.Background(), engine, DefaultCorpus(), 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Target != DefaultTarget {
		t.Errorf("Target = %v with zero target argument, want %v", report.Target, DefaultTarget)
	}

	dir := t.TempDir()
	path, err := report.SaveFile(dir)
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "report_") {
		t.Errorf("SaveFile() path = %s, want report_ prefix", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded Report
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("saved report is not valid JSON: %v", err)
	}
	if loaded.Total != report.Total || loaded.Accuracy != report.Accuracy {
		t.Errorf("round-tripped report = %d/%.1f, want %d/%.1f", loaded.Total, loaded.Accuracy, report.Total, report.Accuracy)
	}
}
