package storage

import "context"

// AvatarStore writes and deletes avatar images. Save returns the public URL
// recorded on the account. Delete is best effort: stores ignore URLs that do
// not belong to them so a switch between backends never breaks profile
// updates.
type AvatarStore interface {
	Save(ctx context.Context, userID, ext, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, avatarURL string) error
}
