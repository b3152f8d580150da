// Package engine contains the core scanning logic: content, filename and
// metadata scans, the comprehensive per-file verdict and the bounded-parallel
// directory batch scan. An Engine is immutable after construction and safe
// for concurrent use. External consumers should use the facade in pkg/core.
package engine
