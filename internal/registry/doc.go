// Package registry is the glue between check kinds named in suite files and
// the compiled Go handlers that perform them. Modules register a handler per
// kind at startup; the registry is then validated against the loaded suite
// so an unknown kind fails before any probe runs.
package registry
