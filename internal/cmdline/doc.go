// Package cmdline parses a single line of user input into a command
// invocation: a keyword, at most one positional argument and a set of
// switches. Each keyword has a Grammar that says whether an argument is
// allowed and which switches exist; grammars live in a Registry that is
// built once and shared read-only.
//
// The tokenizer is a four-state machine (idle, bare token, quoted token,
// switch name) driven one character at a time through ParseState.Step.
// Backslash escapes the next character inside bare and quoted tokens.
package cmdline
