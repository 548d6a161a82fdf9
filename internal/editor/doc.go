// Package editor implements the interactive line editor.
//
// An Editor reads keys from an input source, resolves them through a
// keymap registry to readline commands, and applies them to the edit
// line. History browsing and all history searches are delegated to the
// engine and search packages; the editor supplies the numeric argument
// and the identity of the previous command.
//
// Two entry points are provided. ReadLine blocks until a line is
// accepted. Begin followed by repeated Feed calls processes one key at a
// time, for hosts that run their own event loop:
//
//	ed.Begin("$ ")
//	for {
//	    done, line, err := ed.Feed()
//	    if done {
//	        return line, err
//	    }
//	}
package editor
