package foils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ArcaneArts/nonsense-foil/pkg/foils"
	"github.com/ArcaneArts/nonsense-foil/pkg/graphics"
)

func TestCatalogPresetsAreValid(t *testing.T) {
	for name, build := range foils.Catalog() {
		gradient := build()
		if !gradient.IsValid() {
			t.Errorf("preset %q is not a valid gradient", name)
		}
		if len(gradient.Stops()) < 2 {
			t.Errorf("preset %q has %d stops", name, len(gradient.Stops()))
		}
	}
}

func TestParseSheet(t *testing.T) {
	doc := []byte(`
presets:
  ember:
    type: linear
    start: {x: 0, y: 1}
    end: {x: 1, y: 0}
    stops:
      - {position: 0, color: "#FF4500"}
      - {position: 1, color: gold}
  halo:
    type: radial
    center: {x: 0.5, y: 0.5}
    radius: 0.8
    stops:
      - {position: 0, color: white}
      - {position: 1, color: "#00FFFFFF"}
  whirl:
    type: sweep
    startAngle: 0
    endAngle: 6.28318
    stops:
      - {position: 0, color: red}
      - {position: 1, color: red}
`)

	sheet, err := foils.ParseSheet(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(sheet))
	}

	ember := sheet["ember"]
	if ember.Type != graphics.GradientTypeLinear {
		t.Errorf("ember type = %v, want linear", ember.Type)
	}
	if ember.Linear.Start != (graphics.Offset{X: 0, Y: 1}) {
		t.Errorf("ember start = %+v", ember.Linear.Start)
	}
	if ember.Stops()[0].Color != graphics.Color(0xFFFF4500) {
		t.Errorf("ember stop 0 = %08X, want FFFF4500", uint32(ember.Stops()[0].Color))
	}

	halo := sheet["halo"]
	if halo.Type != graphics.GradientTypeRadial || halo.Radial.Radius != 0.8 {
		t.Errorf("halo parsed wrong: %+v", halo.Radial)
	}
	if halo.Stops()[1].Color.Alpha() != 0 {
		t.Error("halo outer stop should be fully transparent")
	}

	if sheet["whirl"].Type != graphics.GradientTypeSweep {
		t.Errorf("whirl type = %v, want sweep", sheet["whirl"].Type)
	}
}

func TestParseSheet_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown type": `
presets:
  x:
    type: conic
    stops:
      - {position: 0, color: red}
      - {position: 1, color: blue}
`,
		"unknown color": `
presets:
  x:
    type: linear
    stops:
      - {position: 0, color: notacolor}
      - {position: 1, color: blue}
`,
		"bad hex": `
presets:
  x:
    type: linear
    stops:
      - {position: 0, color: "#ZZZZZZ"}
      - {position: 1, color: blue}
`,
		"invalid gradient": `
presets:
  x:
    type: radial
    radius: 0
    stops:
      - {position: 0, color: red}
      - {position: 1, color: blue}
`,
		"not yaml": `{{{`,
	}
	for name, doc := range cases {
		if _, err := foils.ParseSheet([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadSheetOptional(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	sheet, err := foils.LoadSheetOptional(missing)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(sheet) != 0 {
		t.Errorf("missing file should yield an empty sheet, got %d", len(sheet))
	}
}

func TestLoadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foils.yaml")
	doc := []byte(`
presets:
  plain:
    type: linear
    stops:
      - {position: 0, color: black}
      - {position: 1, color: white}
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	sheet, err := foils.LoadSheet(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sheet["plain"]; !ok {
		t.Error("expected preset 'plain'")
	}

	if _, err := foils.LoadSheet(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadSheet should error on a missing file")
	}
}
