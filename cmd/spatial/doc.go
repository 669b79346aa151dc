// Command spatial installs a PipeWire filter-chain virtual sink that applies
// crossfeed and early reflections to stereo playback.
package main
