package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/gobox/pkg/analysis"
	"github.com/philipparndt/gobox/pkg/geometry"
)

type vectorJSON [3]float64

type boxJSON struct {
	Strategy string        `json:"strategy,omitempty"`
	Volume   float64       `json:"volume"`
	Center   vectorJSON    `json:"center"`
	Corner   vectorJSON    `json:"corner"`
	Axes     [3]vectorJSON `json:"axes"`
	Extents  vectorJSON    `json:"extents"`
	Corners  [8]vectorJSON `json:"corners"`
}

type rectJSON struct {
	Area    float64       `json:"area"`
	Center  [2]float64    `json:"center"`
	Corner  [2]float64    `json:"corner"`
	Axes    [2][2]float64 `json:"axes"`
	Extents [2]float64    `json:"extents"`
	Corners [4][2]float64 `json:"corners"`
}

type compareJSON struct {
	Strategy  string   `json:"strategy"`
	Volume    float64  `json:"volume,omitempty"`
	Ratio     float64  `json:"ratio,omitempty"`
	ElapsedMS float64  `json:"elapsed_ms"`
	Box       *boxJSON `json:"box,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func toJSON3(v geometry.Vector3) vectorJSON {
	return vectorJSON{v.X, v.Y, v.Z}
}

func toJSON2(v geometry.Vector2) [2]float64 {
	return [2]float64{v.X, v.Y}
}

func newBoxJSON(strategy string, b geometry.Box) *boxJSON {
	out := &boxJSON{
		Strategy: strategy,
		Volume:   b.Volume(),
		Center:   toJSON3(b.Center()),
		Corner:   toJSON3(b.Corner),
		Extents:  toJSON3(b.Extents),
	}
	for i, a := range b.Axes {
		out.Axes[i] = toJSON3(a)
	}
	for i, c := range b.Corners() {
		out.Corners[i] = toJSON3(c)
	}
	return out
}

func newRectJSON(r geometry.Rectangle) *rectJSON {
	out := &rectJSON{
		Area:    r.Area(),
		Center:  toJSON2(r.Center()),
		Corner:  toJSON2(r.Corner),
		Extents: toJSON2(r.Extents),
	}
	for i, a := range r.Axes {
		out.Axes[i] = toJSON2(a)
	}
	for i, c := range r.Corners() {
		out.Corners[i] = toJSON2(c)
	}
	return out
}

func newCompareJSON(results []analysis.StrategyResult) []compareJSON {
	out := make([]compareJSON, len(results))
	for i, r := range results {
		out[i] = compareJSON{
			Strategy:  r.Strategy.String(),
			ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
		}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			continue
		}
		out[i].Volume = r.Volume
		out[i].Ratio = r.Ratio
		out[i].Box = newBoxJSON("", r.Box)
	}
	return out
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fail("failed to encode JSON: %v", err)
	}
}

func printBox(title string, b geometry.Box) {
	heading(title)
	fmt.Printf("Volume: %.6f cubic units\n", b.Volume())
	fmt.Printf("Center: %s\n", analysis.FormatVector(b.Center()))
	fmt.Printf("Corner: %s\n", analysis.FormatVector(b.Corner))
	fmt.Printf("Extents: %s\n", analysis.FormatVector(b.Extents))
	fmt.Println(au.Bold("Axes:"))
	for i, a := range b.Axes {
		fmt.Printf("  %c: %s\n", 'X'+rune(i), analysis.FormatVector(a))
	}
}
