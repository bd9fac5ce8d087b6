// Package buffer provides the code-point sequence edited by the engine.
//
// A Buffer is an ordered, index-addressable sequence of 32-bit values.
// Values are stored as given: surrogates and values above U+10FFFF are
// allowed until something tries to render them.
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.Append('h', 'i')       // [104 105]
//	buf.Insert(1, 'e', 'y')    // [104 101 121 105]
//	buf.Insert(99, '!')        // past the end appends: [104 101 121 105 33]
//	buf.Delete(0)              // [101 121 105 33]
//
// Positions are zero-based offsets. Insert clamps positions past the end to
// an append; Set and Delete return ErrOffsetOutOfRange instead.
//
// A Buffer is not safe for concurrent use.
package buffer
