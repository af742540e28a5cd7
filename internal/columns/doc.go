// Package columns implements the column selection panel of the call list.
//
// A [Panel] owns an [ItemList] holding every catalog attribute exactly once, each with an enabled flag.
// Input arrives as abstract [Action] values and is routed by the current [Mode]:
//
//  1. [ModeList] : move the cursor, page, toggle the current item, swap it with a neighbour
//  2. [ModeControls] : cycle focus through Accept, Save and Cancel, activate the focused button
//
// Moving focus forward past Cancel wraps to Accept and returns to [ModeList]; moving backward past
// Accept wraps to Cancel and stays in [ModeControls].
//
// Reordering is a pairwise swap with the neighbour, never an insertion, so [ItemList.Move] applied
// twice with the same indexes restores the original arrangement.
//
// The panel performs no I/O. Callers act on the returned [Outcome]: apply [Panel.Commit] to the call
// list, and for [OutcomeCommitAndSave] hand the same selection to the rc file merger.
package columns
