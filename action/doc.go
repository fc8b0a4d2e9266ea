/*
Package action parses the compact chain specification used to configure a resolution
chain and answers which Action applies after a given step yields a given status.

A specification is a whitespace separated list of source names, each optionally followed
by a bracketed list of STATUS=action overrides:

	files [SUCCESS=merge] dns [NOTFOUND=return UNAVAIL=continue] files

Statuses are SUCCESS, NOTFOUND and UNAVAIL; a leading '!' negates the status so
"[!SUCCESS=return]" applies to every status other than SUCCESS. Actions are return,
continue and merge. Both are case-insensitive.

A Table is positional: a source named twice is two distinct steps with independent
overrides. Statuses without an override use the default: Return on SUCCESS, Continue
otherwise.

All syntax errors are reported by Parse as a *ConfigError; a constructed Table is
immutable and safe to share.
*/
package action
