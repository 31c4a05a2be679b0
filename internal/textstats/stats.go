package textstats

import (
	"fmt"
	"math"

	"wordwiz/internal/textutil"
)

// WordsPerMinute is the reading rate behind ReadingTime.
const WordsPerMinute = 200

// LessThanAMinute is reported when the text reads in under one minute.
const LessThanAMinute = "< 1 minute"

// Stats summarizes a block of text.
type Stats struct {
	WordCount int
	// LetterCount is the UTF-16 length of the text with whitespace removed,
	// so punctuation and digits count and an emoji counts twice.
	LetterCount int
	ReadingTime string
}

// Compute returns the statistics for text.
func Compute(text string) Stats {
	words := len(textutil.Fields(text))
	return Stats{
		WordCount:   words,
		LetterCount: textutil.UTF16Len(textutil.StripSpaces(text)),
		ReadingTime: ReadingTime(words),
	}
}

// ReadingTime formats the estimated reading time for a word count.
func ReadingTime(words int) string {
	minutes := float64(words) / WordsPerMinute
	if minutes < 1 {
		return LessThanAMinute
	}
	return fmt.Sprintf("%d minute(s)", int(math.Ceil(minutes)))
}
