// Package scanner runs the secret scan over a file or a directory tree.
//
// A scan goes through four phases:
//
//  1. Enumerating: the target is resolved to a root and a list of files. A
//     file target scans just that file with its parent as root; a directory
//     target walks every regular file below it. Files matched by the ignore
//     spec are dropped here.
//  2. Dispatching: one task per file is handed to a bounded worker pool.
//  3. Scanning (per task): the file is classified, decoded, and each line is
//     run through the signature rules and then the entropy detector.
//  4. Aggregating: every task writes only its own result slot; slots are
//     concatenated in enumeration order once the pool drains.
//
// A file that cannot be read, or whose task panics, contributes no findings
// and is logged at WARN. It never aborts the rest of the scan.
package scanner
