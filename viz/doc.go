// Package viz rasterizes kernel geometry — point clouds, polygons, hulls,
// highlighted pairs — to PNG for debugging and demos.
//
// A Scene is assembled from AddPolygon / AddPoints / AddSegment calls and
// rendered once with Render. The canvas auto-fits the scene's bounding box
// with configurable scale and padding, and flips the y axis so the origin
// sits at the bottom left, matching the kernel's mathematical convention.
// Polygons are filled and stroked with an HSV-spaced palette so adjacent
// shapes stay distinguishable.
//
// Preview writes an already-rendered PNG to the terminal for iTerm2-style
// inline display; it is a debugging convenience, not part of the drawing
// pipeline.
//
// Errors:
//   - ErrEmptyScene — Render on a scene with no geometry.
//   - ErrBadScale, ErrBadPadding — invalid option values (panic at option
//     construction).
package viz
