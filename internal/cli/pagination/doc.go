// Package pagination provides the limit/offset and sort handling shared by
// list commands such as "devices list" and "history list".
package pagination
