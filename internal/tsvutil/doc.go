// Package tsvutil handles tab-separated path tables: row splitting with
// short-row tolerance, and the path rewrite applied to the audio column
// (root prefix replacement, slash normalization, forced extension).
package tsvutil
