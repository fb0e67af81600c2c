package search

// Profile configures a single tree build: which horizon extensions apply and whether
// pruning is enabled. The zero value is the plainest possible search (full-width, no
// extensions, no pruning) -- useful for perft-style leaf counting.
type Profile struct {
	FollowCaptures bool // quiescence-extend capture lines beyond the nominal depth
	FollowChecks   bool // quiescence-extend checking lines beyond the nominal depth
	AlphaBeta      bool // enable alpha-beta pruning
	EnablePruning  bool // enable additional heuristic pruning of clearly-losing siblings
}

// Full is the plainest profile: no extensions, no pruning.
var Full = Profile{}

// Default is a reasonable playing profile.
var Default = Profile{
	FollowCaptures: true,
	FollowChecks:   true,
	AlphaBeta:      true,
}
