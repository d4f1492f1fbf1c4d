package albums

import (
	"context"
	"sync"
)

// LikeResult is the server's answer to a like toggle.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// ToggleFunc performs the server-side toggle for one photo.
type ToggleFunc func(ctx context.Context, photoID int) (LikeResult, error)

// LikeToggler applies like toggles optimistically: the photo flips
// immediately, the server result reconciles the count, and a failed call
// rolls the photo back to its exact prior state. A toggle for a photo
// that already has one in flight is dropped rather than raced.
type LikeToggler struct {
	toggle ToggleFunc

	mu       sync.Mutex
	inFlight map[int]struct{}
}

func NewLikeToggler(toggle ToggleFunc) *LikeToggler {
	return &LikeToggler{
		toggle:   toggle,
		inFlight: make(map[int]struct{}),
	}
}

// Toggle mutates photo in place. It returns false when the toggle was
// dropped because one is already pending for this photo; the error is the
// server call's, after the rollback has been applied.
func (lt *LikeToggler) Toggle(ctx context.Context, photo *Photo) (bool, error) {
	lt.mu.Lock()
	if _, busy := lt.inFlight[photo.ID]; busy {
		lt.mu.Unlock()
		return false, nil
	}
	lt.inFlight[photo.ID] = struct{}{}
	lt.mu.Unlock()

	defer func() {
		lt.mu.Lock()
		delete(lt.inFlight, photo.ID)
		lt.mu.Unlock()
	}()

	prevLiked, prevCount := photo.IsLiked, photo.LikesCount

	if photo.IsLiked {
		photo.IsLiked = false
		photo.LikesCount--
	} else {
		photo.IsLiked = true
		photo.LikesCount++
	}

	res, err := lt.toggle(ctx, photo.ID)
	if err != nil {
		photo.IsLiked = prevLiked
		photo.LikesCount = prevCount
		return true, err
	}

	photo.IsLiked = res.Liked
	photo.LikesCount = res.LikesCount
	return true, nil
}
