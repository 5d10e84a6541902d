/*
Package markov builds n-gram frequency models from corpus text and
generates new text by taking random walks over them.

A Builder scans a corpus in one of two unit modes: character mode, where
every rune is a unit, and word mode, where units are the segments between
single spaces. The resulting Model maps each group of n consecutive units
to the multiset of units observed immediately after it, so a uniform draw
from a successor list reproduces the corpus transition frequencies. A
Generator walks a Model until the requested number of words has been
produced and capitalizes sentence starts in the result.

Randomness is supplied through the Sampler interface, satisfied by
*math/rand/v2.Rand, so callers can seed runs for reproducible output or
inject a deterministic sequence in tests.
*/
package markov
