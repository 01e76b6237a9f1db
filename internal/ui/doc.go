// Package ui draws the letter gallery with Bubble Tea.
//
// The pieces:
//   - GalleryModel: the root tea.Model; lays out cards, routes input and timer messages
//   - CardView: one envelope; owns an envelope.Machine and draws its phase
//   - LetterOverlay: the full-screen paper for one card's message
//   - OverlayStack: the overlays currently shown; the top one is drawn
//   - Grid: responsive card placement and hit-testing
//
// Cards never see each other's messages. Each card's overlay lives at the
// gallery level so it is never clipped by the card that owns it.
package ui
