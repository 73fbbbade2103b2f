// Package aqualedger implements the client-side engine of the AquaLedger
// catch ledger: a small bookkeeping tool for artisanal fishers recording
// catch sales (species, quantity, price, buyer, optional M-Pesa code)
// against a remote service of record.
//
// The core functionalities include:
//   - Validation: a pure, per-field rule evaluator applied identically to
//     blank creation drafts and pre-populated edit drafts.
//   - Aggregation: pure transformations of a record collection into daily
//     and weekly time buckets and categorical tallies (quantity caught per
//     species, earnings per buyer), with deterministic top-N rankings.
//   - Ledger Store Controller: the single owner of the local mirror of the
//     record collection, mediating create, update and delete against the
//     remote service and reconciling local state from its responses.
//   - Session: an explicit authenticated-session context (bearer token and
//     user identity) passed to the controller at construction and persisted
//     between command invocations.
//
// This package serves as the foundational logic for the `alc` command-line
// tool; the remote AquaLedger service remains the single source of truth,
// reached only through the JSON contract in client.go.
package aqualedger
