// Package device discovers candidate physical output devices and resolves
// exactly one install target. Discovery queries pw-cli first and falls
// back to pactl; both produce raw node ids that are deduplicated and
// classified here.
package device
