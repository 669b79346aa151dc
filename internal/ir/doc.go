// Package ir defines the intensity presets and synthesizes the 4-channel
// impulse response assets the convolver graph consumes. Channel layout:
// 0 direct L→L, 1 direct R→R, 2 crossfeed L→R, 3 crossfeed R→L. The
// crossfeed channels model the speaker-to-opposite-ear path (interaural
// delay plus head shadow filtering); the early reflections add room width.
package ir
