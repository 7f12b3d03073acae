// Package htmldoc is a read-only query layer over a parsed HTML tree.
//
// A Document owns the tree for the duration of one extraction. Elements are
// views into that tree and must not be retained after the extraction returns.
// Query operations never fail: an unmatched or invalid selector yields no
// elements. Only Parse can fail, and only when the byte stream cannot be
// tokenized.
package htmldoc
