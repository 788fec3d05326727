// Package transform implements the text transformations behind the
// String Modifiers commands.
//
// Every function here is pure: it takes the selected text and returns the
// replacement. Callers are expected to skip empty selections; Apply does
// that check itself and reports whether a replacement was produced.
//
// Output formats:
//
//	Enclose("abc", "{", "}")              -> {abc}
//	CharArray("ab", Brackets)             -> [ 'a', 'b' ]
//	WordArray("foo, bar;baz", Parens)     -> ( 'foo', 'bar', 'baz' )
package transform
