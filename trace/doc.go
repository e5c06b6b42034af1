// Package trace walks a token down an amidakuji ladder.
//
// 🚀 What is a trace?
//
//	A token starts at the top of lane s and falls row by row. At each row it
//	crosses at most one rung: a rung on its left wins over a rung on its
//	right, lane 0 never looks left and lane L−1 never looks right. The lane
//	it reaches after the last row is its result.
//
// ✨ Key features:
//   - Trace returns the full coordinate Path (1 + 2·R points), ready for a
//     renderer to animate: the start point, then a mid-row point (r+0.5) and
//     an end-of-row point (r+1) for every row.
//   - Outcomes maps every start lane to its result lane at once.
//   - Pure and deterministic: identical ladder and start ⇒ identical Path.
//
// ⚙️ Usage:
//
//	l, _ := ladder.Generate(5, ladder.DefaultRows(5), ladder.WithSeed(7))
//	path, err := trace.Trace(l, 2)
//	if errors.Is(err, trace.ErrOutOfRange) { /* caller bug */ }
//	fmt.Println("lands on", path.End())
//
// Performance:
//
//   - Trace:    O(R) time, O(R) memory for the returned Path.
//   - Outcomes: O(L·R) time, O(L) memory.
package trace
