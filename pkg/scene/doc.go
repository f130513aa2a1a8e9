// Package scene defines the scene graph produced by evaluating a geometry
// script. The scene is an immutable DAG of shapes, transforms and groups;
// each evaluation builds a new one.
package scene
