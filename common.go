package bertlv

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr      func(string) error                 = errors.New
	itoa       func(int) string                   = strconv.Itoa
	atoi       func(string) (int, error)          = strconv.Atoi
	fmtUint    func(uint64, int) string           = strconv.FormatUint
	fmtInt     func(int64, int) string            = strconv.FormatInt
	uc         func(string) string                = strings.ToUpper
	split      func(string, string) []string      = strings.Split
	join       func([]string, string) string      = strings.Join
	hexstr     func([]byte) string                = hex.EncodeToString
	lidx       func(string, string) int           = strings.LastIndex
	cntns      func(string, string) bool          = strings.Contains
	replaceAll func(string, string, string) string = strings.ReplaceAll
	streqf     func(string, string) bool          = strings.EqualFold
	strrpt     func(string, int) string           = strings.Repeat
	trimS      func(string) string                = strings.TrimSpace
	utf8OK     func([]byte) bool                  = utf8.Valid
	bclone     func([]byte) []byte                = bytes.Clone
	beq        func([]byte, []byte) bool          = bytes.Equal
)

const hexDigits = "0123456789ABCDEF"

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
sizeBase128 returns the number of base-128 groups needed to express v
without leading zero groups. Zero needs one group.
*/
func sizeBase128[T constraints.Unsigned](v T) (n int) {
	n = 1
	for v >>= 7; v > 0; v >>= 7 {
		n++
	}
	return
}

/*
appendBase128 appends the minimal base-128 encoding of v to dst, most
significant group first, setting the continuation bit on every group
but the last.
*/
func appendBase128[T constraints.Unsigned](dst []byte, v T) []byte {
	for i := sizeBase128(v) - 1; i >= 0; i-- {
		b := byte(v>>(uint(i)*7)) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

/*
sizeUintBE returns the minimal number of big-endian octets needed to
express v. Zero needs one octet.
*/
func sizeUintBE[T constraints.Unsigned](v T) (n int) {
	n = 1
	for v >>= 8; v > 0; v >>= 8 {
		n++
	}
	return
}

/*
appendUintBE appends the low n octets of v to dst in big-endian order.
*/
func appendUintBE[T constraints.Unsigned](dst []byte, v T, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(uint(i)*8)))
	}
	return dst
}
