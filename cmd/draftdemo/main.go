// Command draftdemo draws a dimensioned plate with the draft library.
//
// The plate corners live in a model: moving a corner with -width or
// -height moves every dimension bound to it.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	draft "github.com/gogpu/gg-draft"
	"github.com/gogpu/gg-draft/recording"
	_ "github.com/gogpu/gg-draft/recording/backends/raster"
	_ "github.com/gogpu/gg-draft/recording/backends/svg"
)

func main() {
	var (
		width   = flag.Float64("width", 120, "plate width, in model units")
		height  = flag.Float64("height", 80, "plate height, in model units")
		radius  = flag.Float64("radius", 15, "hole radius, in model units")
		scale   = flag.Float64("scale", 4, "pixels per model unit")
		color   = flag.String("color", "#000000", "dimension color, as RGB, RGBA, RRGGBB or RRGGBBAA hex")
		output  = flag.String("output", "draft", "output file name, without extension")
		formats = flag.String("formats", "raster,svg", "comma separated backends")
		verbose = flag.Bool("v", false, "log layout decisions")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	draft.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	d, err := buildPlate(*width, *height, *radius, *scale, draft.Hex(*color))
	if err != nil {
		log.Fatalf("Failed to build drawing: %v", err)
	}

	extents, err := d.Extents()
	if err != nil {
		log.Printf("Some dimensions were not drawn: %v", err)
	}
	w, h := canvasSize(extents)
	rec, err := recording.Record(d, w, h)
	if err != nil {
		log.Printf("Recording incomplete: %v", err)
	}

	for _, format := range strings.Split(*formats, ",") {
		format = strings.TrimSpace(format)
		if format == "" {
			continue
		}
		if err := save(rec, format, *output); err != nil {
			log.Fatalf("Failed to save %s: %v", format, err)
		}
	}
}

// buildPlate creates a chamfered plate with a hole, dimensioned with
// horizontal, vertical, angular and radial dimensions drawn in c.
func buildPlate(width, height, radius, scale float64, c draft.Color) (*draft.Drawing, error) {
	const chamfer = 20

	model := draft.NamedPairs{}
	model.Set("origin", draft.Pt(0, 0))
	model.Set("top", draft.Pt(width-chamfer, 0))
	model.Set("corner", draft.Pt(width, chamfer))
	model.Set("right", draft.Pt(width, height))
	model.Set("bottom", draft.Pt(0, height))
	model.Set("center", draft.Pt(width/3, height/2))
	model.Set("rim", draft.Pt(width/3+radius, height/2))

	d := draft.New(draft.WithRegistry(colored(c)))
	sheet := d.NewContainer()
	sheet.SetLocalMap(draft.Translate(60, 60).Multiply(draft.Scale(scale, scale)))
	if err := d.Root().Add(sheet); err != nil {
		return nil, err
	}
	at := func(name string) draft.Point { return draft.BoundPoint(model, name) }

	overall := d.NewHDim(at("bottom"), at("right"), draft.ExplicitPoint(width/2, height+15))

	top := d.NewHDim(at("origin"), at("top"), draft.ExplicitPoint(width/2, -12))
	top.SetLimits("-0.1", "+0.1")

	side := d.NewVDim(at("corner"), at("right"), draft.ExplicitPoint(width+15, height/2))

	hole := d.NewHDim(at("bottom"), at("center"), draft.ExplicitPoint(width/6, height+15))
	hole.SetLevel(1)

	angle := d.NewADim()
	angle.SetOrgs(at("corner"), at("corner"))
	angle.SetRefs(at("right"), at("top"))
	bisector := 7 * math.Pi / 8
	angle.SetPos(draft.ExplicitPoint(width+12*math.Cos(bisector), chamfer+12*math.Sin(bisector)))

	rdim := d.NewRDim()
	rdim.SetRefs(at("center"), at("rim"))
	rdim.SetPos(draft.ExplicitPoint(width/3-radius*2, height/2-radius*2))

	title := d.NewText(fmt.Sprintf("Plate %gx%g", width, height))
	title.SetGlobalMap(draft.Translate(0, -30))

	for _, e := range []draft.Entity{overall, top, side, hole, angle, rdim, title} {
		if err := sheet.Add(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// colored returns the built-in styles with every dimension drawn in c.
func colored(c draft.Color) *draft.Registry {
	reg := draft.NewRegistry()
	for _, dress := range []draft.Dress{
		draft.DressDimension,
		draft.DressAngularDimension,
		draft.DressRadialDimension,
	} {
		style := reg.Dim(dress)
		style.Line.Color = c
		style.Value.Color = c
		style.Limits.Color = c
		reg.SetDim(dress, style)
	}
	return reg
}

// canvasSize fits the drawing extents plus a margin.
func canvasSize(e draft.Extents) (int, int) {
	if !e.Defined {
		return 800, 600
	}
	const margin = 40
	end := e.Max()
	return int(math.Ceil(end.X)) + margin, int(math.Ceil(end.Y)) + margin
}

func save(rec *recording.Recording, format, output string) error {
	backend, err := recording.NewBackend(format)
	if err != nil {
		return err
	}
	if err := rec.Playback(backend); err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", format)
	}
	ext := format
	if format == "raster" {
		ext = "png"
	}
	path := output + "." + ext
	if err := fb.SaveToFile(path); err != nil {
		return err
	}
	log.Printf("Drawing saved to %s", path)
	return nil
}
