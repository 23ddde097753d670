// Package libscan finds dynamically linked objects whose required shared
// libraries cannot be resolved against the libraries installed on disk.
//
// A check runs in two scan passes. The first pass walks the configured
// library roots: every file whose name matches the shared object pattern
// contributes its basename to the set of available libraries, and every
// non-symlinked match is queued for dependency extraction. The second pass
// walks the configured binary roots and queues every regular file. A pool of
// extraction workers reads DT_NEEDED entries from the queued files while a
// single merge goroutine accumulates the requirement index. After the queue
// drains, every required name absent from the available set is reported
// together with the objects that require it.
//
// Availability is decided by file name alone. A library that is a symlink,
// or that cannot itself be parsed, still satisfies the objects requiring it.
package libscan
