// Package file loads Tables from files on disk. A glob may match several files, whose
// contents are concatenated in lexical order of their paths.
package file
