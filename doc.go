// Package svganim detects arrow shapes in an SVG diagram and animates
// their shafts by sweeping a dashed stroke offset across a sequence of
// frames, assembled into a looping GIF.
package svganim
