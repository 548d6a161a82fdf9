// Package script runs Lua init files against a line editor.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table,
// string and math libraries are opened, and dofile, loadfile, load,
// loadstring and require are removed. Each run is bounded by a timeout.
//
// # Lua API
//
// A global keyline table is installed:
//
//	keyline.bind(spec, action)      -- bind a key, e.g. "C-r" or "vi-command:g"
//	keyline.history_add(line)       -- append a line to the history
//	keyline.run(action [, count])   -- run an editing command
//	keyline.last_search()           -- last non-incremental search string or nil
//	keyline.set(option, value)      -- "case_fold" or "active_region"
//	keyline.actions()               -- sorted list of command names
//	keyline.log(message)            -- write to the session log
//
// Example init file:
//
//	keyline.bind("C-r", "non-incremental-reverse-search-history")
//	keyline.bind("vi-command:g", "history-search-backward")
//	keyline.set("case_fold", true)
//	for _, line in ipairs({"make test", "git status"}) do
//	    keyline.history_add(line)
//	end
package script
