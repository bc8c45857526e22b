// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election holds the vote casting, tabulation, reset and candidate
operations. Every function takes the *sql.DB and returns sentinel errors
that handlers map to status codes.

# Casting

CastVote checks, in order: input present, user exists, user has not voted,
candidate exists. The tally upsert and the has_voted flip then run in a
single transaction. A user who has already voted always gets
ErrAlreadyVoted, whatever candidate they name.

# Results

ComputeResults reads every candidate with its tally and hands them to
Tabulate, which computes two-decimal percentages and picks the winner.
Ties go to the candidate with the lowest id.

# Reset

Reset deletes all tallies and clears every has_voted flag in one
transaction.
*/
package election
