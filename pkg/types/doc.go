// Package types defines the small shared vocabulary of loadfile: the
// storage Location categories and the FS interface that native loading
// and persistence go through.
package types
