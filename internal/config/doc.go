// Package config manages the String Modifiers configuration file.
//
// The file is plain text with one key=value pair per line in a fixed order:
//
//	AccelBraces=<Control><Shift>b
//	AccelBrackets=
//	AccelQuotes=
//	AccelCustom=
//	AccelStr2Array=
//	AccelStr2WArray=
//	CustomStart="
//	CustomEnd="
//	RadioCharArray=0
//	RadioWordArray=1
//
// The first six values are accelerator names (empty means no shortcut), the
// next two are the custom enclosure strings and the last two index the
// delimiter palette used by the array conversions. Values are not quoted or
// escaped: everything after the first '=' up to the line terminator is the
// value.
//
// A missing file is not an error. Load returns the defaults and writes them
// out so the next run finds a file to edit. Any other deviation from the
// format is reported as a *ParseError and nothing is applied.
//
// # Sub-packages
//
//   - loader: TOML, YAML and JSON encodings of a Config and environment overrides
//   - watcher: file watching for live reload
package config
