// Package envelope implements the open/close sequencing of a single letter card.
//
// A card moves through a fixed ring of phases:
//
//	Closed -> OpeningFlip -> OpeningFlap -> OpeningContents -> OpeningExpand -> Open
//	Open -> ClosingContents -> ClosingFlap -> ClosingFlip -> Closed
//
// Every phase except Closed and Open is transitional and is left only by a
// deferred Step. Machine never schedules anything itself: Toggle, Close and
// Advance return the next Step and the caller arranges to call Advance once
// Step.After has elapsed (the ui package does this with tea.Tick).
//
// Each sequence is numbered. A Step carries the sequence number it was issued
// for, and Advance ignores Steps from any other sequence, so a late timer can
// never move a card that has since started another sequence.
//
// Machine is not safe for concurrent use; it is driven from a single update loop.
package envelope
