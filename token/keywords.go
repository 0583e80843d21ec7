package token

import "strings"

// Tier classifies how freely a keyword may be used as an identifier.
type Tier uint8

const (
	// NotKeyword marks words absent from the keyword table.
	NotKeyword Tier = iota
	// NonReserved words are keywords only in specific grammar positions.
	NonReserved
	// PreReserved words are usable as identifiers but flagged for future reservation.
	PreReserved
	// Reserved words are never bare identifiers.
	Reserved
)

func (t Tier) String() string {
	switch t {
	case NonReserved:
		return "non-reserved"
	case PreReserved:
		return "pre-reserved"
	case Reserved:
		return "reserved"
	default:
		return "identifier"
	}
}

var keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordTable))
	for kw := KwNone + 1; kw < keywordCount; kw++ {
		m[keywordTable[kw].text] = kw
	}
	return m
}()

// LookupKeyword classifies word case-insensitively.
func LookupKeyword(word string) (Keyword, Tier, bool) {
	if len(word) == 0 || len(word) > maxKeywordLen {
		return KwNone, NotKeyword, false
	}
	kw, ok := keywords[asciiUpper(word)]
	if !ok {
		return KwNone, NotKeyword, false
	}
	return kw, keywordTable[kw].tier, true
}

// maxKeywordLen bounds the lookup so long identifiers skip the map.
const maxKeywordLen = 24

func asciiUpper(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 0x80 {
			return strings.ToUpper(s)
		}
	}
	return s
}

// String returns the canonical upper-case spelling.
func (k Keyword) String() string {
	if k == KwNone || k >= keywordCount {
		return ""
	}
	return keywordTable[k].text
}

// Tier returns the reservation tier of k.
func (k Keyword) Tier() Tier {
	if k == KwNone || k >= keywordCount {
		return NotKeyword
	}
	return keywordTable[k].tier
}

// IsPredefinedType reports whether k begins a predefined value type.
// Used to tell "x :: INT" from "a::b::proc()".
func (k Keyword) IsPredefinedType() bool {
	switch k {
	case KwBool, KwBoolean,
		KwString, KwChar, KwVarchar,
		KwBytes, KwBinary, KwVarbinary,
		KwInt, KwInteger, KwSmallint, KwBigint, KwSmall, KwBig, KwSigned, KwUnsigned,
		KwInt8, KwInteger8, KwInt16, KwInteger16, KwInt32, KwInteger32,
		KwInt64, KwInteger64, KwInt128, KwInteger128, KwInt256, KwInteger256,
		KwUint, KwUint8, KwUint16, KwUint32, KwUint64, KwUint128, KwUint256,
		KwUsmallint, KwUbigint,
		KwFloat, KwFloat16, KwFloat32, KwFloat64, KwFloat128, KwFloat256,
		KwReal, KwDouble, KwDecimal, KwDec,
		KwDate, KwTime, KwTimestamp, KwDatetime, KwLocal, KwZoned,
		KwLocalDatetime, KwLocalTime, KwLocalTimestamp, KwZonedDatetime, KwZonedTime,
		KwDuration, KwNull, KwNothing, KwAny, KwPath, KwList, KwArray, KwRecord,
		KwNode, KwVertex, KwEdge, KwRelationship, KwTyped:
		return true
	default:
		return false
	}
}
