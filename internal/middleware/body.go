package middleware

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"net/url"
)

// MaxBodyBytes caps url-encoded bodies.
const MaxBodyBytes = 100 << 10

// URLEncoded decodes application/x-www-form-urlencoded bodies into a
// mapping that downstream handlers read with Body. Requests of any
// other type see an empty mapping.
func URLEncoded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := url.Values{}

		if isURLEncoded(r) {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

			if err := r.ParseForm(); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					http.Error(w, "request entity too large", http.StatusRequestEntityTooLarge)
					return
				}

				http.Error(w, "failed to parse body", http.StatusBadRequest)
				return
			}

			body = r.PostForm
		}

		ctx := context.WithValue(r.Context(), bodyKey, body)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Body returns the decoded body stored by URLEncoded, never nil.
func Body(ctx context.Context) url.Values {
	if body, ok := ctx.Value(bodyKey).(url.Values); ok {
		return body
	}
	return url.Values{}
}

func isURLEncoded(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}
