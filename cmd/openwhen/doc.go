// Command openwhen shows a gallery of "Open When" letters in the terminal.
//
// Each letter is an envelope card; selecting one flips it, lifts the flap
// and unfolds the message over the gallery. Subcommands list, render and
// validate work without a terminal.
package main
