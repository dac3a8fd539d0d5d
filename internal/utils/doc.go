// Package utils provides small general-purpose helpers shared by the notes
// client, such as the note id generator.
package utils
