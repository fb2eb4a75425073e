package middleware

import "context"

type userHolderKey struct{}

// userHolder carries the authenticated user id back up to outer middleware.
type userHolder struct {
	userID int64
}

func withUserHolder(ctx context.Context) (context.Context, *userHolder) {
	h := &userHolder{}
	return context.WithValue(ctx, userHolderKey{}, h), h
}

func setHolderUser(ctx context.Context, userID int64) {
	if h, ok := ctx.Value(userHolderKey{}).(*userHolder); ok {
		h.userID = userID
	}
}
