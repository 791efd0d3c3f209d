// Package hulls generates the seed geometry of a parametric boat hull.
//
// A hull half is modelled as a quarter circle of radius Beam/2 swept along
// the length axis (X). Generate samples it into a Grid of Stations rows
// by Lines+2 columns. Either end may be closed, collapsing its station to
// a single point on the centerline to form a pointed bow or stern.
//
// Sub-packages turn a Grid into files: render writes STL and OBJ meshes,
// preview draws shaded PNG images and bodyplan draws the classic
// naval architecture line drawings.
package hulls
