/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(update, append, prepend, slicing or concatenation) creates a new vector, leaving
the original unmodified. Under the hood, copy-on-write retains most of the memory held
by the original, and creates a new incarnation of parts of the structure only. Thus,
most of the structure/memory is shared between original and copy, transparently to clients.

Immutable vectors are inherently concurrency-safe. A vector may be read from any number
of goroutines without synchronization. A Builder, on the other hand, is owned by a single
goroutine until its vector is requested.

Structure

Vectors are radix-balanced tries with a branching factor of 32. The left and
right edges of the trie are kept as chains of partial arrays (“prefix” and “suffix”),
while the middle of the trie consists of completely filled sub-tries only. This allows
indexing by plain bit arithmetic and O(1) amortized growth on both ends. A vector
has at most six levels, holding up to 2^31 elements.

Slicing and concatenation re-assemble a new trie from the sub-arrays of the source
tries, sharing every sub-array which is contained completely in the target range.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fp.vector")
}
