package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/wadsvg/wadsvg/internal/config"
	"github.com/wadsvg/wadsvg/internal/geometry"
	"github.com/wadsvg/wadsvg/internal/model"
	"github.com/wadsvg/wadsvg/internal/render"
	"github.com/wadsvg/wadsvg/internal/storage"
	"github.com/wadsvg/wadsvg/internal/things"
	"github.com/wadsvg/wadsvg/pkg/wad"
)

// info command
var infoCmd = &cobra.Command{
	Use:   "info <archive.wad>",
	Short: "Display archive type and lump directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	archive, err := wad.Open(args[0], logManager.Logger())
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s, %d lumps, %d maps\n",
		args[0], archive.Type, len(archive.Directory), len(archive.Maps))
	for _, e := range archive.Directory {
		if e.Size == 0 {
			fmt.Printf("  %s (empty lump)\n", e.Name)
		} else {
			fmt.Printf("  %s: %d bytes starting at %d\n", e.Name, e.Size, e.Offset)
		}
	}
	return nil
}

// maps command
var mapsCmd = &cobra.Command{
	Use:   "maps <archive.wad>",
	Short: "List maps with their lump counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runMaps,
}

func init() {
	mapsCmd.Flags().Bool("things", false, "Break down each map's things by type")
}

func runMaps(cmd *cobra.Command, args []string) error {
	showThings, _ := cmd.Flags().GetBool("things")

	archive, err := wad.Open(args[0], logManager.Logger())
	if err != nil {
		return err
	}

	for _, m := range archive.Maps {
		fmt.Printf("%s: %d linedefs, %d sidedefs, %d sectors, %d things, %d vertexes\n",
			m.Name, len(m.LineDefs), len(m.SideDefs), len(m.Sectors), len(m.Things), len(m.Vertexes))
		if showThings {
			printThingBreakdown(m.Things)
		}
	}
	return nil
}

func printThingBreakdown(ts []wad.Thing) {
	counts := make(map[int16]int)
	for _, t := range ts {
		counts[t.TypeCode]++
	}

	codes := make([]int16, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	for _, code := range codes {
		fmt.Printf("    %4dx %s\n", counts[code], things.Describe(code))
	}
}

// svg command
var svgCmd = &cobra.Command{
	Use:   "svg <archive.wad> [map]",
	Short: "Render maps as SVG floor plans",
	Long: `Render one map, or every map when no name is given. Each map
produces <MAP>.svg plus <MAP>.html, a standalone page with a
checkerboard background.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSvg,
}

func init() {
	svgCmd.Flags().StringP("output", "o", "", "Output directory (default: output.dir from config)")
}

func runSvg(cmd *cobra.Command, args []string) error {
	archive, err := wad.Open(args[0], logManager.Logger())
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output")
	if outDir == "" {
		outDir = config.GetString("output.dir")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := render.New(logManager.Logger())

	if len(args) == 2 {
		m, err := archive.Map(args[1])
		if err != nil {
			return err
		}
		return renderMap(renderer, m, outDir)
	}

	for i := range archive.Maps {
		m := &archive.Maps[i]
		if len(m.LineDefs) == 0 {
			logManager.Logger().Warn("Skipping map with no geometry", "map", m.Name)
			continue
		}
		if err := renderMap(renderer, m, outDir); err != nil {
			return err
		}
	}
	return nil
}

func renderMap(renderer *render.Renderer, m *wad.MapData, outDir string) error {
	svg, _, err := renderer.Map(m)
	if err != nil {
		return err
	}

	svgPath := filepath.Join(outDir, m.Name+".svg")
	if err := os.WriteFile(svgPath, svg, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", svgPath, err)
	}

	htmlPath := filepath.Join(outDir, m.Name+".html")
	if err := os.WriteFile(htmlPath, render.HTML(svg), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", htmlPath, err)
	}

	fmt.Printf("wrote %s and %s\n", svgPath, htmlPath)
	return nil
}

// index command
var indexCmd = &cobra.Command{
	Use:   "index <archive.wad>",
	Short: "Persist per-map and per-sector summaries through the storage backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	logger := logManager.Logger()

	archive, err := wad.Open(args[0], logger)
	if err != nil {
		return err
	}

	cfg, err := config.Storage()
	if err != nil {
		return err
	}
	backend, err := storage.NewBackend(cfg, logger)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.StartArchive(&model.Archive{
		Path: args[0],
		Kind: archive.Type.String(),
	}); err != nil {
		return err
	}

	for i := range archive.Maps {
		if err := indexMap(backend, &archive.Maps[i]); err != nil {
			return err
		}
	}

	if err := backend.FinishArchive(); err != nil {
		return err
	}

	if e, ok := backend.(storage.Exportable); ok && e.ExportedFilePath() != "" {
		fmt.Printf("index written to %s\n", e.ExportedFilePath())
	}
	return nil
}

func indexMap(backend storage.Backend, m *wad.MapData) error {
	rec := &model.MapRecord{
		Name:     m.Name,
		Vertexes: len(m.Vertexes),
		LineDefs: len(m.LineDefs),
		SideDefs: len(m.SideDefs),
		Sectors:  len(m.Sectors),
		Things:   len(m.Things),
	}

	var boundaries []geometry.Boundary
	if len(m.LineDefs) > 0 {
		builder, err := geometry.NewBuilder(m, logManager.Logger())
		if err != nil {
			return err
		}
		var warnings []geometry.Warning
		boundaries, warnings, err = builder.All()
		if err != nil {
			return err
		}

		bounds := builder.Bounds()
		rec.Width = bounds.Width()
		rec.Height = bounds.Height()

		degenerate := make(map[int]struct{})
		for _, w := range warnings {
			degenerate[w.Sector] = struct{}{}
		}
		rec.Degenerate = len(degenerate)
	}

	if err := backend.AddMap(rec); err != nil {
		return err
	}

	for _, boundary := range boundaries {
		loops, err := loopsJSON(boundary.Loops)
		if err != nil {
			return err
		}

		closed := len(boundary.Loops) > 0
		for _, loop := range boundary.Loops {
			if !loop.Closed {
				closed = false
			}
		}

		if err := backend.AddSector(&model.SectorRecord{
			MapID:       rec.ID,
			SectorIndex: boundary.Sector,
			Light:       boundary.Light,
			Closed:      closed,
			Loops:       loops,
		}); err != nil {
			return err
		}
	}

	for _, t := range m.Things {
		if err := backend.AddThing(&model.ThingRecord{
			MapID: rec.ID,
			Code:  t.TypeCode,
			Name:  things.Describe(t.TypeCode),
			X:     t.X,
			Y:     t.Y,
			Angle: t.Angle,
		}); err != nil {
			return err
		}
	}
	return nil
}

// loopsJSON flattens boundary loops into an array of loops, each an array
// of [x, y] pairs.
func loopsJSON(loops []geometry.Loop) (datatypes.JSON, error) {
	out := make([][][2]float64, 0, len(loops))
	for _, l := range loops {
		pts := make([][2]float64, 0, len(l.Points))
		for _, p := range l.Points {
			pts = append(pts, [2]float64{p.X, p.Y})
		}
		out = append(out, pts)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshalling loop geometry: %w", err)
	}
	return datatypes.JSON(data), nil
}
