// Package pairing lines up two rolled dice pools and decides who wins each
// pairing and the duel.
//
// Both clients and the server run the same functions against the same
// session data, so everything here is deterministic: dice are sorted by
// value descending then die size descending, comparisons walk the longer
// pool, and manual overrides are keyed by character id rather than by
// side. Display order is cached per side on first sort so rerolled dice
// keep their position.
package pairing
