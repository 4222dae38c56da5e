// Package seqio loads numeric sequences from plain text.
//
// Format: whitespace-separated numbers, any count per line. Blank lines and
// lines starting with '#' are ignored. Files ending in .gz (or carrying the
// gzip magic bytes) are decompressed transparently; the path "-" reads stdin.
package seqio
