// Package glctx tracks which OpenGL context is current and gates
// context-dependent operations on that bookkeeping.
//
// A native GL implementation allows at most one current context per thread,
// and nearly every GL call is only valid while its owning context is current.
// This package wraps an externally created native context handle in one of
// two currency policies:
//
//   - MonoContext keeps a single process-wide currency slot with no locking,
//     for programs that do all GL work on one thread.
//   - MultiContext keeps one currency slot per OS thread, guarded by a
//     re-entrant lock, and enforces that a context is only ever made current
//     on the thread that created it.
//
// Making a context current displaces the previously current context of the
// same domain and notifies it through its OnLoseCurrent listeners.
// Construction immediately makes the new context current, matching the
// bind-on-create behavior of native context APIs.
//
// The native call surface itself (draw calls, resource lifecycle) is out of
// scope; this package forwards only the clear, capability and parameter
// query entry points declared in the gl package.
package glctx

import "github.com/tinyrange/glctx/internal/logging"

var logger = logging.New("glctx")
