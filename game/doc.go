// Package game keeps the state of one amidakuji draw: the current ladder,
// the participant roster and the last traced selection.
//
// It is the collaborator a presentation layer talks to. The UI asks for a
// lane count change, a regenerate, or a start-lane selection; the Session
// answers with immutable values (ladder, roster, path) that can be rendered
// without further locking.
//
// Invariants:
//
//   - The ladder always has exactly Lanes() lanes; every lane-count change
//     or Regenerate replaces it in full.
//   - Replacing the ladder drops the current selection. Selections taken
//     earlier are detectable with Stale and must be discarded, not patched.
//   - Generation k of a session seeded with s is always built from
//     ladder.DeriveRand(s, k), so a whole session can be replayed from its
//     seed.
//
// A Session is safe for concurrent use.
package game
