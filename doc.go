// Package flow lays out declarative UI trees.
//
// Users import this single package for the public API: element construction,
// document loading, configuration, text estimators and the layout engine.
// A tree is a set of nodes carrying a type tag and a property map; the engine
// measures it, positions it inside a container, and writes x, y, width and
// height back onto every node it positioned.
package flow
