package handler

type postRequest struct {
	Title    string `json:"title"   validate:"required"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}
