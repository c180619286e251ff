/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending, replacement or removal of the last item) creates a copy, leaving the original
unmodified. Under the hood, copy-on-write retains most of the memory held by the original,
and creates a new incarnation of the nodes on a single path of the structure only. Thus,
most of the structure/memory is shared between original and copy, transparently to clients.

Vectors are organized as a trie of fixed degree 2^b (b bits per level, default b=5), plus
a tail of up to 2^b items. Appending fills the tail; a full tail is moved into the trie as
a single leaf. Access to an item therefore takes log_(2^b)(n) steps, which is
“practically constant”.

Immutable vectors are inherently concurrency-safe. They serve as the log store of
package writer, where logs are concatenated frequently and earlier incarnations must
remain valid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fparrow.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fparrow.vector")
}
