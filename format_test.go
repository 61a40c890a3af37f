package unicorn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneralCategoryString(t *testing.T) {
	assert.Equal(t, "Lu", GCLu.String())
	assert.Equal(t, "uppercase letter", GCLu.LongName())
}

func TestBidiClassString(t *testing.T) {
	assert.Equal(t, "FSI", BidiFSI.String())
	assert.Equal(t, "L", BidiL.String())
}

func TestJoiningGroupString(t *testing.T) {
	assert.Equal(t, "Teh_Marbuta_Goal", JoiningGroupTehMarbutaGoal.String())
	assert.Equal(t, "No_Joining_Group", JoiningGroup(255).String())
}

func TestUnknownEnumeratorsFallBackGracefully(t *testing.T) {
	assert.Equal(t, "None", NumericType(200).String())
	assert.Equal(t, "NA", HangulSyllableType(200).String())
	assert.Equal(t, "Other", WordBreak(200).String())
}

func TestCharAsHex(t *testing.T) {
	assert.Equal(t, "U+0041", CharAsHex(0x41))
	assert.Equal(t, "U+10FFFF", CharAsHex(0x10FFFF))
	assert.Equal(t, "U+0000", CharAsHex(0))
}
