// Package catmk helps to describe how a large C++ code base is built from
// many fine grained modules that are grouped into a few physical libraries,
// the categories. Declarations are written in Go or in declaration files
// (see package manifest) and composed into the targets that a host build
// system turns into real libraries.
//
// The model and its idiomatic Go API live in package [catmkore]. Package
// catmk wraps it for everyday use. Within [Edit] declarations panic on
// error and Edit returns the first error:
//
//	ctx := catmk.NewContext(catmk.Config{Static: true}, nil)
//	err := catmk.Edit(ctx, func(ctx catmk.ContextEd) {
//		ctx.Module("G4globman", "global/management", []string{"G4Types.hh"}, []string{"G4Timer.cc"})
//		ctx.Module("G4geometry", "geometry", []string{"G4VSolid.hh"}, nil).
//			LinkLibs(catmk.Public, "G4globman")
//		ctx.Category("G4global", "G4globman")
//		ctx.Category("G4geom", "G4geometry")
//		ctx.Compose()
//	})
//
// Older build descriptions declared each module with its dependencies in one
// call and grouped all modules declared in a directory tree into a library.
// [DefineModule] and [GlobalLibrary] support that style.
//
// [catmkore]: https://pkg.go.dev/git.fractalqb.de/fractalqb/catmk/catmkore
package catmk
