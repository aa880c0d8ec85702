package utils

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxDisplayName = 128

// DisplayName strips any directory part a client put in an upload name and
// bounds it to maxDisplayName bytes without splitting a rune.
func DisplayName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}
	if len(name) > maxDisplayName {
		cut := maxDisplayName
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	return name
}

func NewRequestID() string {
	return uuid.NewString()
}
