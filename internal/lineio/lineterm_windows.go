//go:build windows

package lineio

// LineTerminator is written after every output line.
const LineTerminator = "\r\n"
