package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jskelin/physlab/internal/dynamo"
)

func sampleResult() *dynamo.Result {
	return &dynamo.Result{
		States:  []dynamo.State{{0.2, 0}, {0.21, 0.05}, {0.23, 0.09}},
		Times:   []float64{0, 0.01, 0.02},
		Metrics: map[string]float64{"peak_x0": 0.23},
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("driven_pendulum", 0.01, 0.02, 42, "rk4", sampleResult())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(runID, "driven_pendulum_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Model != "driven_pendulum" || meta.Seed != 42 || meta.Integrator != "rk4" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["peak_x0"] != 0.23 {
		t.Errorf("metrics did not persist: %v", meta.Metrics)
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states: %v", err)
	}
	if len(states) != 3 || len(times) != 3 {
		t.Fatalf("expected 3 rows, got %d states %d times", len(states), len(times))
	}
	if states[2][0] != 0.23 || times[1] != 0.01 {
		t.Errorf("data mismatch: states=%v times=%v", states, times)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save("projectile", 0.001, 1, 1, "rk4", sampleResult()); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("twobody", 0.001, 1, 2, "leapfrog", sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("missing_123"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, _, err := st.LoadStates("missing_123"); err == nil {
		t.Error("expected error for unknown run data")
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	meta := &RunMetadata{ID: "x_1", Model: "driven_pendulum"}
	if err := ExportJSON(enc, meta, [][]float64{{1, 2}}, []float64{0}); err != nil {
		t.Fatalf("export: %v", err)
	}

	var out struct {
		Meta   RunMetadata `json:"meta"`
		Times  []float64   `json:"times"`
		States [][]float64 `json:"states"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Meta.ID != "x_1" || len(out.States) != 1 || out.States[0][1] != 2 {
		t.Errorf("round-trip mismatch: %+v", out)
	}
}
