package source

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ReadTitle reads the ID3v2 title of path, falling back to the file name
// without extension.
func ReadTitle(path string) string {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Title"}})
	if err == nil {
		defer tag.Close()
		if title := strings.TrimSpace(tag.Title()); title != "" {
			return title
		}
	}

	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
