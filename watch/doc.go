// Package watch reloads the input edge list when its file changes, using
// fsnotify and a debounce timer.
package watch
