package bezier

// DefaultSamples is the number of line segments used to draw one curve. The
// curve is evaluated at i/DefaultSamples for i = 0..DefaultSamples, so the
// final sample is exactly t = 1.
const DefaultSamples = 100

// MaxSamples bounds the number of line segments per curve.
const MaxSamples = 10000
