// Package lua embeds a sandboxed gopher-lua state that exposes the string
// modifiers to Lua scripts as the "strmod" module.
//
//	local strmod = require("strmod")
//	print(strmod.enclose("x", "<", ">"))      --> <x>
//	print(strmod.char_array("ab", 1))         --> [ 'a', 'b' ]
//	for _, w in ipairs(strmod.words("a, b")) do print(w) end
//	print(strmod.apply("word-array", "a b"))  --> { 'a', 'b' }
//
// Only the base, table, string, math and package libraries are opened. The
// file loading functions are removed, require only resolves preloaded or
// whitelisted modules and print writes to the state's output writer.
// Every execution runs under a context so long scripts can be interrupted.
package lua
