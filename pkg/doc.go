// Package pkg provides the core libraries for Tagcloud rectangle layouts.
//
// # Overview
//
// Tagcloud places rectangles one at a time around a center point, the way
// words are arranged in a tag cloud. Each rectangle is moved outward along a
// spiral until it fits, then pressed back toward the center. The pkg
// directory is organized into three areas:
//
//  1. Domain logic: [geom], [cloud], [render]
//  2. Serialization and orchestration: [io], [pipeline], [cache]
//  3. Serving: [session], [server]
//
// # Architecture
//
// The typical data flow:
//
//	Size list (txt, json, toml)
//	         ↓
//	    [io] package (read sizes)
//	         ↓
//	    [cloud] package (place each size)
//	         ↓
//	    [render] package (draw the rectangles)
//	         ↓
//	    PNG/SVG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tagcloud/pkg/cloud"
//	    "github.com/matzehuels/tagcloud/pkg/geom"
//	    "github.com/matzehuels/tagcloud/pkg/render"
//	)
//
//	l := cloud.New(geom.Pt(0, 0))
//	for _, s := range []geom.Size{geom.Sz(80, 30), geom.Sz(40, 20)} {
//	    if _, err := l.Place(s); err != nil {
//	        return err
//	    }
//	}
//	png, err := render.PNG(l.Rects(), render.WithScale(4))
//
// # Main Packages
//
// [geom] - Integer points, sizes and rectangles in screen space (y grows
// downward) plus the float vectors the layouter works in.
//
// [cloud] - The layouter. Spiral search on the circle involute followed by
// three compaction passes: diagonal, horizontal, vertical.
//
// [render] - Draws a layout at its bounding box: PNG via golang.org/x/image,
// SVG via ajstarks/svgo, and the JSON layout document.
//
// [io] - Size lists in, layout files in and out.
//
// [pipeline] - Load → layout → render, with caching, used by the CLI and the
// HTTP server alike.
//
// [cache] - Content-addressed cache with file, Redis and null backends.
//
// [session] - In-memory layout sessions with idle expiry.
//
// [server] - chi HTTP API over sessions.
//
// [errors] - Error codes shared by every entry point.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/geom
// [cloud]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cloud
// [render]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/session
// [server]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/tagcloud/pkg/errors
package pkg
