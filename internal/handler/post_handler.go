package handler

import (
	"net/http"

	"go-blog-api/internal/model"
)

// PostHandler serves the placeholder post endpoints. The post feature has no
// logic yet; both endpoints answer with an empty list.
type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, model.PostList{
		Message: "Posts endpoint ready",
		Posts:   []any{},
	})
}

func (h *PostHandler) MyPosts(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, model.PostList{
		Message: "My posts endpoint ready",
		Posts:   []any{},
	})
}
