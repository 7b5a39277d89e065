// Package cryptoerr defines the numeric status taxonomy shared by every
// family in the cryptosuite module. Status values are wire-stable: they are
// preserved from the Velo crypto library's error_codes.h so that callers
// porting status handling keep the same numbers.
package cryptoerr

import "fmt"

// Status is a 16-bit numeric status code. Zero means success.
type Status uint16

// Success is the zero status returned by every operation that completes
// without error.
const Success Status = 0x0000

// Family-disjoint status ranges, preserved from the original library.
const (
	// Stream cipher family (0x2100+).
	StatusStreamOptionsInitMissingImpl   Status = 0x2100
	StatusStreamInitInvalidArg           Status = 0x2105
	StatusStreamInitOutOfMemory          Status = 0x2106
	StatusStreamInitBadEncryptionKey     Status = 0x2107
	StatusStreamStartEncryptionInvalidArg Status = 0x210B

	// PRNG family (0x210F+).
	StatusPRNGOptionsInitMissingImpl Status = 0x210F
	StatusPRNGInitOutOfMemory        Status = 0x2113
	StatusPRNGInitDeviceOpenFailure  Status = 0x2114
	StatusPRNGReadFailure            Status = 0x2118
	StatusPRNGReadWouldOverwrite     Status = 0x2119

	// Suite family (0x211D+).
	StatusSuiteOptionsInitMissingImpl Status = 0x211D

	// Digital signature family (0x2121+).
	StatusSignatureInitInvalidArg           Status = 0x2121
	StatusSignatureOptionsInitMissingImpl   Status = 0x2125
	StatusSignatureVerifyFailure            Status = 0x2126

	// Key-agreement family (0x2129+).
	StatusKeyAgreementShortTermCreateInvalidArg Status = 0x2129
	StatusKeyAgreementOptionsInitMissingImpl    Status = 0x212D
	StatusKeyAgreementInitInvalidArg            Status = 0x2131

	// Hash family (0x2135+).
	StatusHashOptionsInitMissingImpl Status = 0x2135
	StatusHashInitInvalidArg         Status = 0x2139
	StatusHashInitOutOfMemory        Status = 0x213A
	StatusHashDigestInvalidArg       Status = 0x213D
	StatusHashFinalizeInvalidArg     Status = 0x2141

	// Block cipher family (0x2145+).
	StatusBlockOptionsInitMissingImpl Status = 0x2145
	StatusBlockInitInvalidArg         Status = 0x2149
	StatusBlockInitBadAllocator       Status = 0x214A
	StatusBlockInitBadEncryptionKey   Status = 0x214B
	StatusBlockInitBadDecryptionKey   Status = 0x214C

	// Buffer family (0x2150+).
	StatusBufferInitOutOfMemory           Status = 0x2150
	StatusBufferReadWouldOverwrite        Status = 0x2154
	StatusBufferWriteWouldOverwrite       Status = 0x2158
	StatusBufferInvalidArgument           Status = 0x2159
	StatusBufferCopyMismatchedSizes       Status = 0x215C
	StatusBufferPaddingSchemeInvalid      Status = 0x215D

	// MAC family (0x2160+).
	StatusMACOptionsInitMissingImpl Status = 0x2160
	StatusMACInitOutOfMemory        Status = 0x2164
	StatusMACInitInvalidArg         Status = 0x2165
	StatusMACInitInvalidKey         Status = 0x2166
	StatusMACDigestInvalidArg       Status = 0x2168
	StatusMACFinalizeInvalidArg     Status = 0x216C

	// Key-derivation family (0x2170+).
	StatusKDFInvalidArg                   Status = 0x2170
	StatusKDFInitOutOfMemory              Status = 0x2174
	StatusKDFOptionsInitMissingImpl       Status = 0x2178
	StatusKDFOptionsInitMissingHMACImpl   Status = 0x217A
	StatusKDFInitInvalidArg               Status = 0x217C
	StatusKDFDeriveKeyInvalidArg          Status = 0x2180

	// Mock family (0x2190+).
	StatusMockNotAdded Status = 0x2190
)

// Error wraps a Status with a family label and an optional cause, matching
// the teacher's sentinel-error-plus-%w-wrapping style.
type Error struct {
	Status Status
	Family string
	Op     string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (status 0x%04x): %v", e.Family, e.Op, uint16(e.Status), e.cause)
	}
	return fmt.Sprintf("%s: %s (status 0x%04x)", e.Family, e.Op, uint16(e.Status))
}

func (e *Error) Unwrap() error { return e.cause }

// New constructs a family-tagged status error.
func New(family, op string, status Status) *Error {
	return &Error{Status: status, Family: family, Op: op}
}

// Wrap constructs a family-tagged status error around a causal error.
func Wrap(family, op string, status Status, cause error) *Error {
	return &Error{Status: status, Family: family, Op: op, cause: cause}
}

// Is reports whether err carries the given Status, unwrapping as needed.
func Is(err error, status Status) bool {
	var ce *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			ce = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ce != nil && ce.Status == status
}
