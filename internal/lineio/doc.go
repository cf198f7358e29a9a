// Package lineio moves line collections between files and memory. Reading is
// capped at a maximum line count, writing terminates every line with the
// platform line terminator, and paths ending in ".gz" or ".zst" are
// transparently decompressed on input and compressed on output.
package lineio
