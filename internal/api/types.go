package api

// Operation names a user-facing transform.
type Operation string

const (
	OpEncrypt   Operation = "encrypt"
	OpDecrypt   Operation = "decrypt"
	OpObfuscate Operation = "obfuscate"
	OpReveal    Operation = "reveal"
	OpLower     Operation = "lower"
	OpUpper     Operation = "upper"
	OpTitle     Operation = "title"
	OpSqueeze   Operation = "squeeze"
)

// TransformRequest carries the input of a text-to-text operation.
type TransformRequest struct {
	Operation Operation
	Text      string
	// Keyword is used by encrypt and decrypt only.
	Keyword string
	// Language is used by the case operations only.
	Language string
}

// TransformResult describes the output of a text-to-text operation.
type TransformResult struct {
	Operation   Operation `json:"operation"`
	Output      string    `json:"output"`
	InputRunes  int       `json:"inputRunes"`
	OutputRunes int       `json:"outputRunes"`
}

// Stats mirrors textstats.Stats for transport.
type Stats struct {
	WordCount   int    `json:"wordCount"`
	LetterCount int    `json:"letterCount"`
	ReadingTime string `json:"readingTime"`
}

// ErrorKind classifies failures returned by this package.
type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindInvalidKey      ErrorKind = "invalid_key"
	ErrorKindMalformedInput  ErrorKind = "malformed_input"
	ErrorKindInvalidArgument ErrorKind = "invalid_argument"
	ErrorKindInternal        ErrorKind = "internal"
)

// ErrorPayload is the transport form of an error.
type ErrorPayload struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}
