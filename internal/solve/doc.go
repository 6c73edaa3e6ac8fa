// Package solve computes the roots of validated polynomial equations in
// closed form:
//
//   - degree 1: direct solve x = −b/a
//   - degree 2: quadratic formula, branching on the sign of the discriminant
//   - degree 3: Cardano's method, with the trigonometric parametrization for
//     the three-real-root case (casus irreducibilis) so no complex
//     intermediate arithmetic is ever needed
//
// Results come back as a [RootSet] tagged with an exhaustive [Case];
// consumers are expected to switch over every case. Complex conjugate roots
// are reported as an explicit real/imaginary [ConjugatePair] rather than
// complex values.
//
// Discriminant comparisons against zero use a small epsilon so rounding
// noise near a branch boundary cannot select the wrong branch.
package solve
