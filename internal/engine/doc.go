// Package engine implements the sprint calendar and capacity engine.
//
// The engine turns a sprint window and a roster of members with weekly
// bandwidth into derived, render-ready values: the sprint's time state,
// per-member and team capacity figures, the next free slot in a member's
// schedule, and the clipped bar geometry for timeline rendering.
//
// ARCHITECTURE:
//
// Pure, stateless-per-call computation:
// Every query is a pure function of its arguments plus the injected Clock.
// Nothing is persisted between calls except the working-day memo cache,
// which is append-only and keyed by immutable inputs. Callers re-query on
// every render and always get values consistent with a single "today".
//
// Errors are data:
// The engine never returns an error. Missing project dates, inverted
// intervals, and unscheduled tasks all degrade to zeroed or absent output
// (TimeState.Valid=false, nil slot, no bar) because the consuming surface
// must always have something renderable.
//
// Inputs are read-only:
// The engine never mutates a Plan, Member, or Task it is handed. The
// transient day-allocation map built for a scheduling query is discarded
// when the query returns.
package engine
