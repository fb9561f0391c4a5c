// Package imagecompress approximates raster images by low-rank
// factorization of their per-channel pixel matrices — trading visual
// fidelity for a smaller effective representation.
//
// 🚀 What is imagecompress?
//
//	A small, deterministic numerical kernel that brings together:
//		• Matrix primitives: dense row-major transpose / multiply / matrix×vector
//		• Eigen solver: power iteration with deflation on symmetric PSD matrices
//		• SVD engine: rank-ordered {U, Σ, Vᵗ} built on AᵗA
//		• Rank truncation: fixed component count or cumulative energy threshold
//		• Channel pipeline: grayscale or R/G/B, parallel per-channel, with
//		  progress checkpoints, MSE and a data-based compression ratio
//
// ✨ Why choose imagecompress?
//
//   - Deterministic – the random source is injected and seedable, so results
//     are reproducible across runs
//   - Degrades, never fails – ill-conditioned input truncates rank instead
//     of erroring; reconstructions are always clamped to valid pixels
//   - Pure Go core – the kernel depends only on the standard library; the
//     CLI adds structured logging, YAML tuning and image decoding on top
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/   — dense row-major Matrix and the multiply/transpose primitives
//	eigen/    — power-iteration eigen decomposition with deflation
//	svd/      — singular value decomposition built on the eigen solver
//	rank/     — ByCount / ByEnergy truncation and pixel-range reconstruction
//	pipeline/ — pixel buffer ↔ channel matrices, progress, MSE, ratio
//
// The cmd/imagecompress CLI decodes PNG/JPEG files, auto-detects grayscale
// input, runs the pipeline and reports retained components, compression
// ratio and reconstruction error.
//
//	go get github.com/reinshift/imagecompress
package imagecompress
