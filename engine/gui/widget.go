package gui

// Widget is the common contract of every catalog widget. A widget value is
// configured with builder calls and then consumed exactly once by AddTo,
// which must reserve space first, apply any caller-state mutation second,
// and only then emit paint commands positioned by the reserved rect, so
// the visuals reflect this frame's interaction.
type Widget interface {
	AddTo(r *Region) Response
}
