// Package file implements the external mirror ports against a plain
// file on disk.
//
// The mirror file holds the full CRM state as pretty-printed JSON and
// is rewritten wholesale on every state change. An fsnotify watcher on
// the parent directory reports out-of-band modifications so the mirror
// can be flagged out of sync; watching is best-effort and never
// affects the mutation path.
package file
