// Package amidakuji is a ghost-leg (amidakuji) lottery: N vertical lanes,
// random horizontal rungs, and a token that falls from a chosen lane to a
// single result lane.
//
// The module is organized into small packages:
//
//	ladder/ - random rung layout (seedable), immutable Ladder type
//	trace/  - deterministic path tracing and the full lane mapping
//	roster/ - participant labels, replace-on-write
//	game/   - session state a UI drives: lane count, regenerate, select
//
// and a terminal front end:
//
//	cmd/amidakuji - draws the board, traces a lane, prints results
//
// Quick ASCII example (3 lanes, 2 rows, start at lane 1):
//
//	  1   2   3
//	  |---*   |
//	  |   |---*   → lands on 3
//
//	go install github.com/katalvlaran/amidakuji/cmd/amidakuji@latest
package amidakuji
