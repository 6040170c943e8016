// file: internals/features/school/students/model/level.go
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Level: representasi ternormalisasi tingkatan/form pelajar.
//
// Data historis menyimpan level dengan dua format yang tidak konsisten
// ("3" vs "Form 3"). Normalisasi dilakukan SEKALI di tepi ingest (create/
// update student, provisioning level admin); query selanjutnya hanya
// membandingkan kolom smallint hasil normalisasi.
type Level int16

const LevelUnknown Level = 0

// ParseLevel menerima kedua format historis, case-insensitive:
//
//	"3"        → Level(3)
//	"Form 3"   → Level(3)
//	"form3"    → Level(3)
//	"tingkatan 3" → Level(3)
func ParseLevel(raw string) (Level, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return LevelUnknown, false
	}
	for _, prefix := range []string{"form", "tingkatan"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
			break
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 13 {
		return LevelUnknown, false
	}
	return Level(n), true
}

// String mengembalikan bentuk kanonik untuk tampilan.
func (l Level) String() string {
	if l == LevelUnknown {
		return ""
	}
	return fmt.Sprintf("Form %d", int(l))
}

// LevelMatches membandingkan dua designation mentah tanpa peduli format.
// Dua string yang sama-sama gagal parse dianggap TIDAK match (hindari
// admin dengan level korup melihat pelajar dengan level korup).
func LevelMatches(a, b string) bool {
	la, oka := ParseLevel(a)
	lb, okb := ParseLevel(b)
	return oka && okb && la == lb
}
