package vorbis

import "testing"

func TestErrorMessages(t *testing.T) {
	codes := []Error{
		ErrNotVorbisHeader,
		ErrUnsupportedVorbisVersion,
		ErrHeaderBadType,
		ErrHeaderBadFormat,
		ErrHeaderIsAudio,
		ErrUtf8Decode,
		ErrAudioIsHeader,
		ErrAudioBadFormat,
		ErrEndOfPacket,
		ErrBufferNotAddressable,
	}
	for _, c := range codes {
		if c.Error() == "unknown vorbis error" {
			t.Errorf("Error(%d) has no message", c)
		}
	}
}

func TestErrorUnknownCode(t *testing.T) {
	var e Error = 999
	if e.Error() != "unknown vorbis error" {
		t.Errorf("Error(999).Error() = %q, want %q", e.Error(), "unknown vorbis error")
	}
}
