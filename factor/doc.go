/*
Package factor rewrites a two-level sum-of-products expression into a
multi-level network of smaller expressions linked by fresh intermediate
variables ("nodes"), minimizing the total literal count. It implements the
classic kerneling approach of algebraic logic synthesis.

The pipeline runs in five stages, repeated to a fixpoint:

1. Kernel extraction. Kernels(f) enumerates the (co-kernel, kernel) pairs of
the expression: every cube-free quotient reachable by dividing f by one of
its cubes.

2. Kernel matrix. BuildMatrix arranges the pairs into a boolean relation
whose rows are the distinct co-kernels and whose columns are the distinct
kernels.

3. Rectangle enumeration. Rectangles lists the column-closed all-ones blocks
of that relation. A rectangle identifies a sub-expression shared by several
co-kernels.

4. Scoring. Profit predicts the literal savings of extracting a rectangle as
a shared node; Best picks the winner deterministically.

5. Application. Apply rewrites the expression: the covered cubes are removed
and replaced by one cube per selected co-kernel carrying the new node
literal, and the node is defined as the union of the selected kernels.

When the rectangle pipeline is unproductive, a cheap first-fit fallback
(ExtractCommonNode) pulls a common cube out of a group of overlapping cubes.

Synthesize drives the whole loop and then recursively re-factors every
generated node definition, threading a single node-id counter through all
calls so that node names stay globally unique. For example:

	res, err := factor.Synthesize(sop.Parse("ac+ad+bc+bd"), factor.DefaultOptions())

rewrites the input as t1*t2 with t1 = a+b and t2 = c+d.

Everything in this package is sequential and deterministic: all set-valued
data is kept in a canonical sorted order, so two runs over the same input
produce the same network.
*/
package factor
