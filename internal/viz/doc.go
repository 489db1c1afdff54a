// Package viz provides the interactive terminal view.
//
// [Model] is a bubbletea model that plays back a trajectory, lets the user
// edit parameters and recomputes only when asked:
//
//	Tab       - select next parameter
//	Up/K      - increase selected parameter (+5%)
//	Down/J    - decrease selected parameter (-5%)
//	0         - set selected parameter to zero
//	R/Enter   - recompute with the edited parameters
//	Space     - pause/resume playback
//	[ ]       - scrub backward/forward
//	Q         - quit
//
// Edits that fail validation leave the previous trajectory on screen and
// show the error.
package viz
