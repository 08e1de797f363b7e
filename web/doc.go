// Package web exposes an engine.Session over HTTP with gorilla/mux: graph
// upload, algorithm runs, playback controls and a server-sent event stream
// of playback frames for a browser to animate.
package web
