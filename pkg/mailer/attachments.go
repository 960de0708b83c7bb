package mailer

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"detailwave.be/booking-api/pkg/models"
)

// Photos arrive as data URLs: data:image/png;base64,....
var dataURLPattern = regexp.MustCompile(`^data:([A-Za-z-+/]+);base64,(.+)$`)

// DecodeAttachments turns the submitted photo payloads into binary
// attachments. Malformed entries are dropped individually: one bad photo
// must never sink the whole booking. Filenames keep the submission position
// (photo-1, photo-2, ...) so holes left by dropped entries stay visible.
func DecodeAttachments(photos []string) []models.Attachment {
	attachments := make([]models.Attachment, 0, len(photos))
	for i, photo := range photos {
		matches := dataURLPattern.FindStringSubmatch(photo)
		if len(matches) != 3 {
			continue
		}

		content, err := base64.StdEncoding.DecodeString(matches[2])
		if err != nil {
			continue
		}

		attachments = append(attachments, models.Attachment{
			Filename: fmt.Sprintf("photo-%d.%s", i+1, extensionFor(matches[1])),
			Content:  content,
		})
	}
	return attachments
}

// extensionFor derives a file extension from the declared media type,
// falling back to jpg when the type carries no subtype.
func extensionFor(mediaType string) string {
	parts := strings.SplitN(mediaType, "/", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return "jpg"
}
