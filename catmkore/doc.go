// Package catmkore implements the core model of catmk for composing physical
// libraries from modules. It uses idiomatic Go error handling, which can make
// writing build descriptions a bit cumbersome. However, this package is the
// foundation for the declarations of modules and categories, the resolution
// of module links to category links and the one-time composition of the
// physical targets. The core concepts are [Context], [Module], [Category] and
// [Target]. An easy-to-use wrapper for everyday use is provided by the
// [catmk] package.
//
// Declaring and composing are two separate phases. Links between modules can
// only be turned into links between physical libraries once the category of
// every module is known. Therefore [Context.Compose] runs once after all
// declarations are done.
//
// [catmk]: https://pkg.go.dev/git.fractalqb.de/fractalqb/catmk
package catmkore
