// Package graph models the fixed spatial-processing signal graph: two
// splitters fanning the stereo input into four convolvers (direct and
// crossfeed paths) summed by two mixers. Errors here are silent and
// audible rather than loud, so the builder validates the structure it
// just produced before anything is serialized.
package graph
