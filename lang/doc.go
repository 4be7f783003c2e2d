// Package lang parses JTL, a minimal line-oriented tag language.
//
// A JTL document is a sequence of semicolon-terminated statements. The
// first line is a fixed header, followed by an environment section that
// declares named values, and a body section whose statements each encode
// one element. Parsing a document yields an ordered sequence of elements;
// each element holds the explicit attribute assignments from its line plus
// the reserved attributes KEY, Content, and Contents.
//
// # Grammar
//
// Informal line-level grammar, after blank-line stripping and
// semicolon-splitting:
//
//	Header     → "DOCTYPE=JTL"                          (first line, literal)
//	Directive  → ">>>ENV" | ">>>BEGIN" | ">>>END"
//	EnvAssign  → ">>>" name "=" value                   (ENV section only)
//	Element    → (">" name "=" "\"" text "\"")* ">" key ">" content
//	EnvRef     → "$env:" name                           (content position only)
//
// Sections must appear in order: header, ENV, BEGIN, body, END. An element
// content expression of the form $env:name is replaced by the value bound
// to name in the ENV section; any other content is taken verbatim. Lines
// beginning with "/*", "*/", or ">//>" are comments and are ignored.
//
// # Example
//
//	DOCTYPE=JTL
//	>>>ENV;
//	>>>greeting=hello;
//	>>>BEGIN;
//	>lang="en">welcome>$env:greeting;
//	>>>END;
//
// Parsing the document above produces a single element:
//
//	{KEY: "welcome", lang: "en", Content: "hello", Contents: "hello"}
//
// # Limitations
//
// Quoted attribute values are matched literally between the quotes; there
// is no escape syntax, so a value cannot contain a double quote. Elements
// are flat: there is no nested element structure, and no serialization
// back to JTL text.
//
// The parser holds no process-wide state. The environment table and the
// document under construction are local to a single call, so independent
// documents may be parsed concurrently without coordination.
package lang
