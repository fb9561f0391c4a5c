// Package pipeline drives a full image compression: it splits an RGBA
// pixel buffer into channel matrices, runs the SVD engine and a rank
// truncation policy per channel, and recomposes the output buffer.
//
// What:
//
//   - Compress handles one image end to end: {gray} or {r,g,b} channel
//     matrices, per-channel decomposition + reconstruction, alpha forced
//     to full opacity, aggregated statistics.
//   - Channels are logically independent and run in parallel goroutines;
//     they share no mutable state and join before recomposition, so the
//     result is identical to a sequential run with the same seeds.
//   - Progress is reported at fixed checkpoints as an integer in [0,100]
//     with a human-readable stage label. Checkpoints are observational
//     only: they never affect control flow, and a nil callback makes the
//     run fully synchronous and silent.
//
// Statistics:
//
//   - UsedComponents aggregates per-channel counts by rounding their
//     average; TotalComponents is the per-channel declared rank.
//   - Ratio models the storage cost of a rank-k factorization versus the
//     dense original: (rows×cols) / (used×(rows+cols+1)), rounded to two
//     decimals.
//   - MSE is the standard per-channel squared-difference mean over R, G
//     and B, ignoring alpha. An image compared with itself is exactly 0.
//
// Determinism:
//
//   - Each channel derives an independent seed from the configured solver
//     seed (SplitMix64 mixing), so parallel runs reproduce bit-identically
//     for a fixed seed.
//
// Errors:
//
//   - ErrNilImage / ErrBadBounds / ErrBadBuffer: malformed pixel buffer.
//   - ErrBadPercent: retention percent outside [0, 100].
//   - ErrUnknownMode / ErrUnknownPolicyName: selector outside the set.
//   - Solver failures (matrix.ErrDimensionMismatch and friends) abort the
//     whole compression; convergence shortfall inside a channel does not.
package pipeline
