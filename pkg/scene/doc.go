// Package scene collects the named geometric entities produced by a
// script, along with the lines of output it emitted.
package scene
