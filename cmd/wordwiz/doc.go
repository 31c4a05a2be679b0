// Package main hosts the WordWiz CLI entrypoint and command graph.
//
// The Cobra-based command tree collects text from arguments, files, or
// standard input, hands it to the api package, and renders results as plain
// text, JSON, or tables. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new transforms to the internal packages first,
// then surface them through dedicated commands here.
package main
