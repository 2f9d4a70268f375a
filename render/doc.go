// Package render provides implementations of [bezier.Renderer].
//
// [Raster] draws into an image using golang.org/x/image/vector and can encode
// the result as PNG. [SVG] produces an SVG document. [Recorder] records the
// calls it receives, which is useful for testing and for replaying a drawing
// onto another renderer.
//
// All renderers map a viewport of the scene, by default the square [-1, 1]²
// with y pointing up, onto their output.
package render
