// Package plan defines the externally-owned input model for the sprint
// engine: the project (sprint window), the team roster, the task list, and
// the display-only holiday dates.
//
// The engine in internal/engine only ever reads these values; it never
// mutates them and never validates them. Validation lives here, at the
// loading boundary, and reports every violation as structured data rather
// than failing on the first one; the consuming surface always needs
// something renderable.
//
// Plan files are YAML. Before decoding, files are structurally checked
// against the embedded CUE schema (schema.cue), so shape errors surface
// with field-level positions instead of as half-decoded structs.
package plan
