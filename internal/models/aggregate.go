package models

// ArticleFeedItem is the read-time projection of an article for one viewer:
// the article joined with its author plus interaction totals and the
// viewer's own like/bookmark state. It is recomputed on every query and
// never persisted.
type ArticleFeedItem struct {
	ArticleWithAuthor
	LikesTotal          int  `json:"likesTotal"`
	BookmarksTotal      int  `json:"bookmarksTotal"`
	CommentsTotal       int  `json:"commentsTotal"`
	ViewerHasLiked      bool `json:"viewerHasLiked"`
	ViewerHasBookmarked bool `json:"viewerHasBookmarked"`
}

// FeedPage is one page of the article feed with pagination metadata.
type FeedPage struct {
	Articles      []ArticleFeedItem `json:"articles"`
	TotalArticles int               `json:"totalArticles"`
	TotalPages    int               `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
}
