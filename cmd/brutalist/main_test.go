package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, configFile string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", configFile}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// bundledConfig points at a config file that does not exist, so defaults and
// the embedded dataset apply.
func bundledConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "brutalist.yaml")
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// brokenConfig writes a dataset with an out-of-range coordinate and a config
// that loads it.
func brokenConfig(t *testing.T, strict bool) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "buildings.json", `[
		{"id": "ok", "name": "Fine Block", "area": "Leeds", "lat": 53.8, "lng": -1.55, "type": "housing", "status": "standing", "year": 1968},
		{"id": "bad", "name": "Lost At Sea", "area": "Nowhere", "lat": 123.0, "lng": 0.0, "type": "civic", "status": "standing", "year": 1970}
	]`)
	writeFile(t, dir, "collections.json", `[]`)
	contents := "project: broken\nversion: 1\ndataset:\n  buildings: [buildings.json]\n  collections: [collections.json]\n"
	if strict {
		contents += "  strict: true\n"
	}
	return writeFile(t, dir, "brutalist.yaml", contents)
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestQueryList(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "type",
			args: []string{"--type", "transport"},
			want: []string{"Preston Bus Station", "Trinity Square Car Park"},
		},
		{
			name: "decade and status exclude unknown year",
			args: []string{"--decade", "1960", "--status", "threatened"},
			want: []string{"Dunelm House", "Cumbernauld Town Centre", "St Peter's Seminary"},
		},
		{
			name: "search matches area",
			args: []string{"--search", "south bank"},
			want: []string{"Royal National Theatre", "Hayward Gallery"},
		},
		{
			name: "collection",
			args: []string{"--collection", "lost", "--type", "transport"},
			want: []string{"Trinity Square Car Park"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, bundledConfig(t), append([]string{"query", "list"}, tt.args...)...)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			lines := outputLines(out)
			if len(lines) != len(tt.want) {
				t.Fatalf("expected %d lines, got %q", len(tt.want), out)
			}
			for i, name := range tt.want {
				if !strings.HasPrefix(lines[i], name+" (") {
					t.Fatalf("line %d: expected %q, got %q", i, name, lines[i])
				}
			}
		})
	}
}

func TestQueryList_NoMatches(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "list", "--search", "zzz")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "No buildings found.\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestQueryList_UnknownType(t *testing.T) {
	if _, _, err := runCLI(t, bundledConfig(t), "query", "list", "--type", "castle"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestQueryList_JSON(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "list", "--json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var buildings []map[string]any
	if err := json.Unmarshal([]byte(out), &buildings); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(buildings) != 17 {
		t.Fatalf("expected the full bundled dataset, got %d", len(buildings))
	}
	if buildings[0]["id"] != "trellick-tower" {
		t.Fatalf("expected dataset order, got %v", buildings[0]["id"])
	}
}

func TestQueryBuilding(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "building", "trellick-tower")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"Name: Trellick Tower", "Type: HOUSING", "Year: 1972", "Nearby:", "Alexandra Road Estate (alexandra-road) 2.5 km away"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestQueryBuilding_JSON(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "building", "trellick-tower", "--nearby", "2", "--json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var view buildingView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if view.Building.ID != "trellick-tower" || len(view.Nearby) != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Nearby[0].Building.ID != "alexandra-road" || view.Nearby[1].Building.ID != "brunswick-centre" {
		t.Fatalf("unexpected ranking: %s, %s", view.Nearby[0].Building.ID, view.Nearby[1].Building.ID)
	}
}

func TestQueryBuilding_UnknownYear(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "building", "anglia-square", "--nearby", "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "Year: unknown") || !strings.Contains(out, "Architect: unknown") {
		t.Fatalf("expected unknown year and architect:\n%s", out)
	}
}

func TestQueryBuilding_NotFound(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "building", "euston-arch")
	if err != nil {
		t.Fatalf("absence should not fail, got %v", err)
	}
	if out != "No building found for \"euston-arch\".\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestQueryNearby(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "nearby", "park-hill", "--count", "2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	lines := outputLines(out)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(lines[0], "preston-bus-station") || !strings.Contains(lines[1], "birmingham-central-library") {
		t.Fatalf("unexpected ranking:\n%s", out)
	}
}

func TestQueryNearby_DefaultCountFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "brutalist.yaml", "project: test\nversion: 1\nnearby:\n  count: 5\n")

	out, _, err := runCLI(t, cfg, "query", "nearby", "trellick-tower")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := len(outputLines(out)); got != 5 {
		t.Fatalf("expected 5 neighbours, got %d:\n%s", got, out)
	}
}

func TestQueryNearby_NegativeCount(t *testing.T) {
	if _, _, err := runCLI(t, bundledConfig(t), "query", "nearby", "park-hill", "--count", "-1"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestQueryCollections(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "collections")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "LONDON ICONS (london-icons) 7 buildings") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if got := len(outputLines(out)); got != 4 {
		t.Fatalf("expected 4 collections, got %d", got)
	}
}

func TestQueryCollection(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "collection", "lost", "--json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var view collectionView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if view.Name != "LOST" || view.BuildingCount != 4 || len(view.Buildings) != 4 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Buildings[0].ID != "robin-hood-gardens" {
		t.Fatalf("expected dataset order, got %s", view.Buildings[0].ID)
	}

	out, _, err = runCLI(t, bundledConfig(t), "query", "collection", "missing")
	if err != nil || out != "No collection found for \"missing\".\n" {
		t.Fatalf("unexpected result: %q, %v", out, err)
	}
}

func TestQueryFacets(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "query", "facets")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for _, want := range []string{"Types:", "Statuses:", "Decades:", "MIXED USE", "1960S"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestValidate_Bundled(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "validate")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "No issues found.\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestValidate_Errors(t *testing.T) {
	out, _, err := runCLI(t, brokenConfig(t, false), "validate")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(out, "Errors (1):") || !strings.Contains(out, "bad:") || !strings.Contains(out, "coordinate_out_of_range") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestOpenDataset_LenientLogsIssues(t *testing.T) {
	out, logs, err := runCLI(t, brokenConfig(t, false), "query", "list")
	if err != nil {
		t.Fatalf("expected lenient load, got %v", err)
	}
	if got := len(outputLines(out)); got != 2 {
		t.Fatalf("expected both buildings served, got %d", got)
	}
	if !strings.Contains(logs, "dataset_loaded") || !strings.Contains(logs, "coordinate_out_of_range") {
		t.Fatalf("expected load and issue logs, got %q", logs)
	}
}

func TestOpenDataset_StrictFails(t *testing.T) {
	if _, _, err := runCLI(t, brokenConfig(t, true), "query", "list"); err == nil {
		t.Fatalf("expected strict load to fail")
	}
}

func TestInit(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "brutalist.yaml")

	out, _, err := runCLI(t, cfg, "init", "--name", "my-catalogue")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "Wrote") {
		t.Fatalf("unexpected output: %q", out)
	}
	contents, err := os.ReadFile(cfg)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(contents), "project: my-catalogue") {
		t.Fatalf("unexpected config:\n%s", contents)
	}

	if _, _, err := runCLI(t, cfg, "init"); err == nil {
		t.Fatalf("expected error when config exists")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, bundledConfig(t), "version")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != version+"\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
