package models

// Comment belongs to exactly one post. The client can create and list
// comments; update and delete are not exposed.
type Comment struct {
	ID      int64  `json:"id,omitempty"`
	PostID  int64  `json:"postId"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}

// DashboardStats are the aggregate counts shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers int64 `json:"totalUsers"`
	TotalPosts int64 `json:"totalPosts"`
}
