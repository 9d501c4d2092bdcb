// Package vocab maps mark ids to their textual labels and back.
//
// The table is fixed: id 0 is the padding token "<pad>", and the remaining
// ids name barlines, clefs, key and time signatures, notes, rests and other
// symbols in sorted order.
package vocab
