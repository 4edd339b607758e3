// Package viz is the interactive terminal front end, built on Bubble Tea.
//
// A [Board] receives steps from the player and keeps the display state;
// the [Model] polls it on every frame and draws bars, counters, the code
// panel and the help line. The board never calls back into the player, so
// player commands issued from key handlers cannot deadlock against a
// render in progress.
//
// # Key Bindings
//
//	Space   - Play/Pause
//	N / →   - Step
//	R       - Reset
//	G       - Generate a random array
//	E       - Edit the array (comma-separated)
//	A       - Switch algorithm
//	C       - Cycle code view (pseudo, python, c, cpp, java)
//	+ / -   - Faster / slower
//	T       - Cycle color themes
//	?       - Toggle help
//	Q       - Quit
package viz
