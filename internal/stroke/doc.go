// Package stroke expands flattened subpaths into filled outlines.
//
// Each subpath is offset by half the stroke width on both sides. The
// resulting outline is built as:
//  1. the forward offset in path order
//  2. the end cap, joining forward to backward
//  3. the backward offset, reversed
//  4. the start cap, back to the first forward point
//
// A closed subpath has no caps and yields two contours, the forward
// offset and the reversed backward offset. The contours wind in opposite
// directions, so a nonzero fill paints exactly the ring between them.
//
// # Caps
//
//   - CapButt ends flush with the endpoint
//   - CapRound adds a half disc of radius width/2
//   - CapSquare extends width/2 past the endpoint
//
// # Joins
//
//   - JoinMiter extends the outer edges to their intersection, falling
//     back to a bevel when the miter length exceeds MiterLimit times the
//     width
//   - JoinRound adds an arc around the vertex
//   - JoinBevel cuts the corner with a straight edge
//
// Only the outer side of a join is shaped. The inner side pivots through
// the vertex and the overlap is absorbed by the nonzero rule.
package stroke
