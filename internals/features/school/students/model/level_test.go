package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want Level
		ok   bool
	}{
		{"3", 3, true},
		{"Form 3", 3, true},
		{"form 3", 3, true},
		{"FORM 3", 3, true},
		{"form3", 3, true},
		{"Tingkatan 5", 5, true},
		{" 4 ", 4, true},
		{"", LevelUnknown, false},
		{"Form", LevelUnknown, false},
		{"abc", LevelUnknown, false},
		{"0", LevelUnknown, false},
		{"99", LevelUnknown, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestLevelMatches_HistoricalFormats(t *testing.T) {
	// dua format historis yang sama-sama valid harus dianggap sama
	assert.True(t, LevelMatches("3", "Form 3"))
	assert.True(t, LevelMatches("Form 3", "form 3"))
	assert.False(t, LevelMatches("3", "Form 4"))

	// data korup tidak boleh match dengan data korup
	assert.False(t, LevelMatches("", ""))
	assert.False(t, LevelMatches("abc", "abc"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "Form 3", Level(3).String())
	assert.Equal(t, "", LevelUnknown.String())
}

func TestStudentNormalizeLevel(t *testing.T) {
	s := StudentModel{StudentLevelRaw: "Form 2"}
	s.NormalizeLevel()
	assert.Equal(t, Level(2), s.StudentLevel)

	s.StudentLevelRaw = "banyak salah"
	s.NormalizeLevel()
	assert.Equal(t, LevelUnknown, s.StudentLevel)
}
