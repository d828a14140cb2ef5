// Package persistence provides word-granular binary I/O for BARCH files.
//
// Every integer in a BARCH file is one host machine word written in host
// byte order, so files are not portable between 32-bit and 64-bit targets
// or across byte orders. This is a known limitation of the format, kept
// for compatibility with existing archives.
package persistence
