// Package cipher implements the two obfuscation ciphers offered by WordWiz.
//
// The keyed substitution cipher shifts every symbol of a fixed 62-symbol
// alphabet (A-Z, a-z, 0-9) by the alphabet index of a repeating keyword, then
// wraps the result in standard Base64 so it can be copied around as ASCII.
// The self-keyed shift cipher is a Caesar rotation whose distance is the
// UTF-16 length of the input itself.
//
// Neither cipher provides confidentiality. Output must stay byte-compatible
// with existing WordWiz ciphertext: characters outside the alphabet pass
// through unchanged and do not advance the key cursor.
//
// All functions are pure and safe for concurrent use.
package cipher
