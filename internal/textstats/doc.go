// Package textstats derives the summary shown next to the WordWiz editor:
// word count, non-whitespace character count and an estimated reading time
// at a fixed 200 words per minute.
package textstats
