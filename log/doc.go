/*
Package log provides global output control across the whole of nsschain. Logging comes in
four levels: Silent, Major, Minor and Debug with each level more detailed than the
previous. Levels are inclusive, so, e.g., if MinorLevel is set that implies MajorLevel
logging.

Chain evaluation logs each step at Debug, source adapters log backend faults at Minor and
the command logs scenario summaries at Major.

The Print and Printf interface are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. If the resulting string contains multiple
lines they are all printed with the prefix for the logging level and excess trailing
newlines are trimmed.

Scenarios may be evaluated concurrently so all writes to the output are serialized by a
package mutex. Each call produces its lines as a single Write so lines from different
callers are never interleaved.

Specialist output functions external to this package should still use log.Out() to access
the current io.Writer for the purposes of capturing output for tests.
*/
package log
