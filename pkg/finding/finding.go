// Package finding splits static-analysis reports into finding records and
// filters the records of a newer report against an older one.
// A record is the raw text of one finding: its `<file>:<line>:` header line
// followed by any continuation lines the linter printed for it.
// Records are compared as raw text by Levenshtein distance, so findings that
// only moved to another line or were reworded slightly are treated as known.
package finding
