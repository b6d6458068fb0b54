// Package sanitize blanks out comments and string/character literals in
// C/C++-like source so that later passes can scan for brackets without
// tripping over a '{' inside "a string" or a /* comment */.
//
// Every output line has exactly the byte length of its input line; columns
// found on the sanitized text are valid on the original text.
//
// Не делает: токенизацию, препроцессор, разбор синтаксиса.
package sanitize
