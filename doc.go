// Package banca implements the accounting engine for a recurring shared-stake
// cash game day: a fixed roster of participants repeatedly pools money into
// discrete sessions ("bancas"), each session's closing pot is redistributed
// proportionally to contributions, and signed net balances accumulate across
// sessions until settled.
//
// The core functionalities include:
//   - Balance Store: an insertion-ordered mapping from participant to signed
//     running net balance, owned by a Day value and never shared globally.
//   - Session Accountant: closing a session computes each contributor's
//     proportional share of the pot and their profit or loss, then transfers
//     unpaid buy-ins to the session host.
//   - Settlement Planner: a pure function turning any balance snapshot into an
//     ordered list of pairwise transfers that brings every balance within a
//     cent of zero.
//   - Exit Reconciler: plans and, on confirmation, commits the payout for a
//     participant leaving before the day closes.
//   - Day Closer: corrects floating-point drift and produces the final
//     per-participant summary together with a full settlement plan.
//
// All state is in-memory and lives for exactly one day; there is no
// persistence. This package serves as the foundational logic for the `banca`
// command-line tool.
package banca
