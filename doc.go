/*
Package runenorm implements the Unicode Normalization Forms NFC, NFD, NFKC
and NFKD for streams of code points.

This package conforms to:
  - Unicode Standard Annex #15 (https://unicode.org/reports/tr15/) for
    normalization and the Stream-Safe Text Format
  - the Unicode version reported by [UnicodeVersion]

# Overview

Using this package, you can:
  - Normalize strings, byte slices, and rune slices to any of the four forms
  - Normalize unbounded input with a fixed amount of memory
  - Check cheaply whether text is already normalized
  - Split text into independently normalizable segments

Normalization makes canonically equivalent text compare equal. For example,
"é" can be written as the single code point U+00E9 or as "e" followed by
U+0301 COMBINING ACUTE ACCENT. Both render identically, but == and map keys
tell them apart:

	"\u00e9" == "e\u0301"                       // false
	runenorm.NFC.String("e\u0301") == "\u00e9"   // true
	runenorm.NFD.String("\u00e9") == "e\u0301"   // true

# Getting Started

For simple use cases:
  - [Form.String] / [Form.Bytes] / [Form.Runes] - Normalize whole inputs
  - [Form.IsNormalString] - Exact "is it normalized?" test

For streaming:
  - [Normalizer] - Push code points one by one, collect output as it becomes final
  - [Form.All] - Normalize an iter.Seq[rune]
  - [Form.Reader] / [Form.Writer] / [Form.Transformer] - golang.org/x/text/transform integration

For detection and segmentation:
  - [Form.QuickCheck] / [Form.QuickCheckString] / [Form.QuickCheckRunes]
  - [Form.FirstSegment] / [Form.FirstSegmentInString] / [Form.Segments]

# Forms

The canonical forms NFD and NFC only unify canonically equivalent text. The
compatibility forms NFKD and NFKC also unify compatibility variants such as
ligatures, width variants, and superscripts:

	runenorm.NFC.String("\ufb01")  // "\ufb01" (unchanged)
	runenorm.NFKC.String("\ufb01") // "fi"

The decomposing forms NFD and NFKD leave text fully decomposed, the
composing forms NFC and NFKC recompose it afterwards.

# Quick Check

[Form.QuickCheck] answers in a single pass without allocating. [Yes] means
the input is normalized, [NotYes] means it may not be, and [IllFormed]
reports invalid UTF-8 or invalid code points. The whole-input functions use
it to return normalized input unchanged.

# Streaming

A [Normalizer] holds at most a fixed number of code points. Runs of more
than 30 non-starters (combining marks) are cut, as the Stream-Safe Text
Format prescribes. For input in that format, which is all realistic text,
streaming output is identical to whole-input normalization. By default a cut
only splits the run; [Normalizer.SetStreamSafe] inserts U+034F COMBINING
GRAPHEME JOINER instead.

Idempotence (f(f(x)) == f(x)) and the usual confluence identities such as
NFC(NFD(x)) == NFC(x) hold for all input in Stream-Safe Text Format, and for
any input once stream-safe mode is on. Without the joiner the place of a cut
depends on how the input happens to be composed, so a run of more than 30
non-starters can be reordered differently on a second pass.

Normalization tables are derived from golang.org/x/text/unicode/norm the
first time they are needed and are shared by all sessions.

# Logging

The package does not log by default. Pass a btclog.Logger to [UseLogger] to
see table construction statistics and internal consistency errors.
*/
package runenorm
