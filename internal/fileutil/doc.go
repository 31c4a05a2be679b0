// Package fileutil reads CLI input text and writes results to disk.
package fileutil
