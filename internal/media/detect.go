package media

import "strings"

// rawExts hold headerless interleaved samples whose layout comes from
// configuration.
var rawExts = map[string]bool{
	".raw": true,
	".pcm": true,
	".bin": true,
	".s16": true,
	".s32": true,
}

// containerExts describe their own sample layout.
var containerExts = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".flac": true,
	".ogg":  true,
}

// IsSupportedExt returns true if the extension can be loaded.
func IsSupportedExt(ext string) bool {
	ext = strings.ToLower(ext)
	return rawExts[ext] || containerExts[ext]
}

// IsRawExt returns true if the extension names a headerless sample file.
func IsRawExt(ext string) bool {
	return rawExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of loadable formats.
func SupportedExtsList() string {
	return ".raw, .pcm, .bin, .s16, .s32, .wav, .mp3, .flac, .ogg"
}
