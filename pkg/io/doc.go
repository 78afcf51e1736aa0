// Package io reads size lists and reads and writes laid-out clouds.
//
// # Size lists
//
// A size list is the input to a layout run: an ordered sequence of
// rectangle sizes, optionally with a layout center. Three formats are
// accepted and selected by file extension:
//
// Plain text (.txt), one size per line as WxH or "W H", # starts a comment:
//
//	# title
//	12x4
//	6 3
//
// JSON (.json), an array of objects:
//
//	[{"width": 12, "height": 4}, {"width": 6, "height": 3}]
//
// TOML (.toml), an array of tables with an optional center:
//
//	[center]
//	x = 400
//	y = 300
//
//	[[rect]]
//	width = 12
//	height = 4
//
// Sizes that are not strictly positive are rejected with INVALID_SIZE and
// the offending line (text) or index (JSON, TOML).
//
// # Layout files
//
// A layout file stores the result of a run so it can be rendered again
// without re-running placement:
//
//	{
//	  "center": {"x": 0, "y": 0},
//	  "rects": [
//	    {"x": -6, "y": -2, "width": 12, "height": 4}
//	  ]
//	}
//
// Rectangles keep placement order. [WriteLayout] output can be re-read with
// [ReadLayout] for round-trip processing.
package io
