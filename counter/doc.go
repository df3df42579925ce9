// Package counter implements the counter stream controller: four UI actions
// (start a new counter, increment, raise an error, complete) drive a counter
// subject whose emissions are fanned out to a raw view and an even-filtered
// view on a Display.
//
// A counter goes through Active and then one terminal phase, Errored or
// Completed. A terminated counter ignores every action but StartNewCounter,
// which abandons it and builds a new one from zero. Actions received before
// the first start are ignored the same way.
//
// The controller is not safe for concurrent use; drive it from a single
// event loop.
package counter
