package glctx

// Color is an RGBA color with float32 components, normally in [0, 1].
// Its four fields are laid out consecutively so a composite GL query such as
// ColorClearValue can fill it as four floats in red, green, blue, alpha order.
type Color struct {
	R, G, B, A float32
}

var (
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorTransparent = Color{0, 0, 0, 0}
)
