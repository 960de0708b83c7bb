package mailer

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(content []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(content)
}

func TestDecodeAttachments(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}

	attachments := DecodeAttachments([]string{pngDataURL(payload)})
	require.Len(t, attachments, 1)
	assert.Equal(t, "photo-1.png", attachments[0].Filename)
	assert.Equal(t, payload, attachments[0].Content)
}

func TestDecodeAttachmentsDropsMalformedEntriesIndividually(t *testing.T) {
	good := pngDataURL([]byte("ok"))

	attachments := DecodeAttachments([]string{
		"not a data url",
		good,
		"data:image/png;base64,@@@not-base64@@@",
	})

	require.Len(t, attachments, 1)
	// Numbering follows the submission position, holes included.
	assert.Equal(t, "photo-2.png", attachments[0].Filename)
}

func TestDecodeAttachmentsEmptyAndNil(t *testing.T) {
	assert.Empty(t, DecodeAttachments(nil))
	assert.Empty(t, DecodeAttachments([]string{}))
}

func TestExtensionFallsBackToJpg(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("x"))

	attachments := DecodeAttachments([]string{"data:image;base64," + content})
	require.Len(t, attachments, 1)
	assert.Equal(t, "photo-1.jpg", attachments[0].Filename)
}

func TestDecodeAttachmentsKeepsDeclaredSubtype(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("x"))

	attachments := DecodeAttachments([]string{
		"data:image/webp;base64," + content,
		"data:image/jpeg;base64," + content,
	})
	require.Len(t, attachments, 2)
	assert.Equal(t, "photo-1.webp", attachments[0].Filename)
	assert.Equal(t, "photo-2.jpeg", attachments[1].Filename)
}
