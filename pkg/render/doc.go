// Package render turns a rectangle layout into images.
//
// # Overview
//
// The renderers consume the rectangles produced by package cloud and never
// modify them. All of them size their output to the tight bounding box over
// every rectangle corner and translate the layout so that box starts at the
// origin:
//
//   - [Image]: an RGBA pixel buffer, one pixel per layout unit
//   - [PNG]: the same buffer encoded as PNG, optionally upscaled
//   - [SVG]: one <rect> per rectangle
//
// An empty rectangle collection fails with EMPTY_LAYOUT (see package errors).
// Raster output larger than [MaxPixels] fails with INVALID_SIZE; SVG has no
// such limit.
//
// # Options
//
// Rendering is configured with functional options:
//
//	img, err := render.Image(rects,
//	    render.WithFill(color.RGBA{0x5f, 0x9e, 0xa0, 0xff}),
//	    render.WithStroke(color.Black),
//	)
//
//	png, err := render.PNG(rects, render.WithScale(4))
//
// The default style fills rectangles with cadet blue and outlines them with a
// one-pixel black border.
package render
