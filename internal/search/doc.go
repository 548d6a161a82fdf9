// Package search implements non-incremental history search for the line
// editor.
//
// Three searches share one line-replacement path:
//
//   - Non-incremental search prompts for a string (":" in emacs mode, "/"
//     or "?" for vi pattern search), lets the user edit it, and on Enter
//     searches history from where the user started.
//   - Search again repeats the last non-incremental string without
//     prompting.
//   - History search (prefix or substring) uses the text left of the
//     cursor as a standing key. Repeated invocations step through matches,
//     collapsing consecutive identical lines.
//
// A leading "^" in a search string anchors the match at the start of the
// line.
//
// # Blocking and callback modes
//
// In blocking mode Search reads keys until the string is complete. In
// callback mode Search only sets up the search and returns; the caller
// feeds each available key through Step until Step reports done. The
// search in progress is kept in the engine's State between calls.
//
// # Errors
//
// Every entry point returns nil on success. ErrAborted reports a user
// abort, ErrNotFound a miss, and ErrNoSearchString a missing previous
// search string (it also matches ErrNotFound). Each failure rings the bell
// exactly once.
package search
