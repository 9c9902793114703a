package auth

import "context"

type subjectKey struct{}

// WithSubject stores the verified subject identifier for downstream handlers.
func WithSubject(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subjectID)
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(subjectKey{}).(string)
	return id, ok && id != ""
}
