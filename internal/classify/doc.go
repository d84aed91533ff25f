// Package classify implements the category recognizers applied to extracted
// strings. Each recognizer reports the spans of text matching its category.
// Recognizers are structural parsers rather than regular expressions so
// matching cost stays linear in text length on adversarial input.
package classify
