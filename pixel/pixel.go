package pixel

// MaxChannels is the largest arity a pixel type may have.
const MaxChannels = 4

// Values holds a pixel's components in the canonical representation. Only
// the first Channels() entries are meaningful.
type Values [MaxChannels]float32

// Reader is the read capability: building a pixel from component values.
// Both methods must work on the zero value.
type Reader[P any] interface {
	Channels() int
	FromValues(Values) P
}

// Writer is the write capability: exposing a pixel's component values.
type Writer interface {
	Channels() int
	Values() Values
}

// Pixel is a type with both capabilities.
type Pixel[P any] interface {
	Reader[P]
	Writer
}

// Channels returns the arity of P.
func Channels[P interface{ Channels() int }]() int {
	var p P
	return p.Channels()
}

// Read builds a pixel from the first Channels() values of ch.
func Read[C Channel, P Reader[P]](ch []C) P {
	var p P
	var v Values
	for i := range p.Channels() {
		v[i] = Float(ch[i])
	}
	return p.FromValues(v)
}

// Write stores p into the first Channels() values of ch.
func Write[C Channel, P Writer](p P, ch []C) {
	v := p.Values()
	for i := range p.Channels() {
		ch[i] = FromFloat[C](v[i])
	}
}

// Transcode reads a pixel stored in one channel domain and stores it in
// another without changing the pixel type.
func Transcode[CO, CI Channel, P Pixel[P]](dst []CO, src []CI) {
	Write(Read[CI, P](src), dst)
}
