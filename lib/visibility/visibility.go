// Package visibility holds the one shared reader check for targeted
// content: knowledge articles and updates use it so "who can see this"
// is decided the same way everywhere.
package visibility

import (
	"staffhub-backend/models"
	dbmodels "staffhub-backend/models/db"
)

// CanView reports whether the user may read content with the given
// visibility and target lists. Admin-level callers see everything.
func CanView(user *dbmodels.User, vis models.Visibility, targetUserIDs, targetGroups []string) bool {
	if user == nil {
		return false
	}
	if user.Role.IsAdminLevel() {
		return true
	}
	if vis != models.VisibilitySpecificUsers {
		return true
	}
	for _, id := range targetUserIDs {
		if id == user.ID {
			return true
		}
	}
	tags := map[string]bool{}
	for _, tag := range user.GroupTags() {
		tags[tag] = true
	}
	for _, group := range targetGroups {
		if tags[group] {
			return true
		}
	}
	return false
}

// CanViewDraft hides unpublished content from everyone but admin-level
// users and the author.
func CanViewDraft(user *dbmodels.User, status models.PublishStatus, authorID string) bool {
	if status == models.PublishPublished {
		return true
	}
	if user == nil {
		return false
	}
	return user.Role.IsAdminLevel() || user.ID == authorID
}
