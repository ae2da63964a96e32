// Package parallel runs loops over independent index ranges concurrently:
// computations for one index must not depend on computations for another.
//
// What:
//
//   - Loop   — for (i = begin; i < end; i++) body(i), fanned out across
//     workers in contiguous chunks.
//   - Reduce — the same fan-out, but each index yields a value and the
//     values are folded pairwise with an associative combine function.
//
// Why:
//
//   - Element-wise array math, per-row transforms, and per-trace scans are
//     embarrassingly parallel; this package gives them the fan-out/join
//     boilerplate once, built on golang.org/x/sync/errgroup.
//   - Chunking bounds task overhead: indices are handed to workers in
//     contiguous runs of at least Chunk, so tiny bodies are not swamped by
//     scheduling costs.
//
// Semantics:
//
//   - The first error returned by any body stops the loop (remaining
//     chunks are skipped, running bodies finish) and is returned.
//   - Context cancellation behaves like a body error.
//   - An empty range (end <= begin) is a no-op.
//   - Reduce's combine must be associative; the fold order across chunks
//     is unspecified. It must also be safe to call concurrently.
//
// Options (nil selects every default):
//
//   - Workers — concurrent workers; default runtime.GOMAXPROCS(0).
//   - Chunk   — minimum indices per task; default 1.
//   - Ctx     — cancellation context; default context.Background().
//
// Errors:
//
//   - ErrWorkers — Workers < 1 in explicit options.
//   - ErrChunk   — Chunk < 1 in explicit options.
package parallel
