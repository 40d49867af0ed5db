// Package utils carries small shared helpers.
package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet string = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	length   int    = 22
)

// NanoID generates an entity primary key.
func NanoID() string {
	return gonanoid.MustGenerate(alphabet, length)
}

// NanoString generates an alphanumeric ID of the given length.
func NanoString(len int) string {
	return gonanoid.MustGenerate(alphabet, len)
}
