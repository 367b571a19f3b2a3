package data

import (
	"math/rand/v2"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DateLayout is the yyyy-MM-dd layout used for DateString.
	DateLayout = "2006-01-02"

	hexDigits = "0123456789ABCDEF"
)

var colorHexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

// Memo is a single note entry. Memos are never modified once created.
type Memo struct {
	ID       string
	Content  string
	Date     time.Time
	ColorHex string
}

// NewMemo builds a memo with a fresh id.
func NewMemo(content string, date time.Time, colorHex string) Memo {
	return Memo{
		ID:       uuid.NewString(),
		Content:  content,
		Date:     date,
		ColorHex: colorHex,
	}
}

// DateString returns the creation date as yyyy-MM-dd.
func (m Memo) DateString() string {
	return m.Date.Format(DateLayout)
}

// Color parses ColorHex. Unparsable values yield black.
func (m Memo) Color() colorful.Color {
	c, err := colorful.Hex(m.ColorHex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// RGB returns the 8-bit channels of Color.
func (m Memo) RGB() (uint8, uint8, uint8) {
	return m.Color().RGB255()
}

// ShortID returns the first 8 characters of the id.
func (m Memo) ShortID() string {
	if len(m.ID) > 8 {
		return m.ID[:8]
	}
	return m.ID
}

// RandomColor returns "#" followed by six hex digits picked uniformly at random.
func RandomColor() string {
	b := make([]byte, 7)
	b[0] = '#'
	for i := 1; i < len(b); i++ {
		b[i] = hexDigits[rand.IntN(len(hexDigits))]
	}
	return string(b)
}

// ValidColorHex reports whether s is "#" plus six upper-case hex digits.
func ValidColorHex(s string) bool {
	return colorHexPattern.MatchString(s)
}
