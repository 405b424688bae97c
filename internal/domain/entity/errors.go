package entity

import "errors"

var (
	// ErrUnauthenticated is returned when a credential maps to no known identity.
	ErrUnauthenticated = errors.New("invalid authentication token")

	// ErrUserNotFound is returned when the target user id is unknown to the directory.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoAvatarSet is the normal "not present" outcome: the user exists but has
	// never uploaded an avatar.
	ErrNoAvatarSet = errors.New("user has no avatar")

	// ErrBlobMissing indicates directory/storage drift: the pointer references a
	// blob that is absent from storage. Reported distinctly from ErrNoAvatarSet.
	ErrBlobMissing = errors.New("avatar file not found")

	// ErrInvalidMediaType is returned for declared media types outside the allow-list.
	ErrInvalidMediaType = errors.New("only PNG and JPEG images are allowed")

	// ErrPayloadTooLarge is returned when the payload exceeds the size ceiling.
	ErrPayloadTooLarge = errors.New("avatar image is too large")
)
