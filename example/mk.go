// This is an example build description that declares a small part of a
// detector simulation toolkit with the Go API of catmk.
package main

import (
	"flag"
	"log"
	"os"

	"git.fractalqb.de/fractalqb/catmk"
	"git.fractalqb.de/fractalqb/catmk/catmkore"
)

var (
	tracer = catmk.DefaultTracer().(*catmk.WriteTracer)

	static, shared bool
	writeDot       bool
	adjacency      string
)

func flags() {
	flag.BoolVar(&static, "static", static, "Build static libraries")
	flag.BoolVar(&shared, "shared", shared, "Build shared libraries")
	flag.BoolVar(&writeDot, "dot", writeDot, "Write graphviz file to stdout and exit")
	flag.StringVar(&adjacency, "adj", adjacency, "Write module adjacency list to file")
	fTrace := flag.String("trace", "", "Set trace level")
	flag.Parse()

	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flags()

	ctx := catmk.NewContext(
		catmk.Config{
			Shared:        shared,
			Static:        static,
			AdjacencyFile: adjacency,
			Probe:         catmkore.AnyProbe{}, // no sources in this example
		},
		catmkore.NewTrace(nil, tracer),
	)

	var cmp *catmk.Composition
	// Start editing the context, recovering panics to errors
	err := catmk.Edit(ctx, func(ctx catmk.ContextEd) {
		ctx.Module("G4globman", "global/management",
			[]string{"G4Types.hh", "G4Timer.hh"},
			[]string{"G4Timer.cc"},
		).
			LinkLibs(catmk.Private, "CLHEP::CLHEP")

		ctx.Module("G4hepnumerics", "global/HEPNumerics",
			[]string{"G4Integrator.hh"},
			[]string{"G4ChebyshevApproximation.cc"},
		).
			LinkLibs(catmk.Public, "G4globman")

		ctx.Category("G4global", "G4globman", "G4hepnumerics")

		// Old style: everything declared since the snapshot becomes one library
		before := ctx.Snapshot()
		ctx.DefineModule(catmk.LegacyModule{
			Name:         "G4geometrymng",
			Dir:          "geometry/management",
			Headers:      []string{"G4VSolid.hh"},
			Sources:      []string{"G4VSolid.cc"},
			GranularDeps: []string{"G4globman"},
		})
		ctx.DefineModule(catmk.LegacyModule{
			Name:         "G4navigation",
			Dir:          "geometry/navigation",
			Headers:      []string{"G4Navigator.hh"},
			Sources:      []string{"G4Navigator.cc"},
			GranularDeps: []string{"G4geometrymng", "G4hepnumerics"},
		})
		ctx.GlobalLibrary("G4geometry", before)

		cmp = ctx.Compose()
	})
	if err != nil {
		log.Fatal("declaring modules: ", err)
	}

	if writeDot {
		if _, err := cmp.WriteDot(os.Stdout, "geant4"); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := (catmk.Listing{}).WriteTargets(os.Stdout, cmp); err != nil {
		log.Fatal(err)
	}
}
