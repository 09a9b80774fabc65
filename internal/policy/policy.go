// Package policy содержит правила доступа к постам и комментариям.
//
// Все функции чистые: решение зависит только от действующего аккаунта
// (его ID и роли) и владельца ресурса. Чтение комментариев и опубликованных
// постов открыто; неопубликованное видит только администратор; изменение
// и удаление разрешены автору или администратору.
package policy

import "github.com/magabrotheeeer/weather-blog/internal/models"

// CanModify разрешает изменение или удаление ресурса автору и администратору.
func CanModify(actor *models.Account, authorID int64) bool {
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleAdmin || actor.ID == authorID
}

// CanListAll разрешает административный список всех постов, независимо от авторства.
func CanListAll(actor *models.Account) bool {
	return actor.IsAdmin()
}

// CanView разрешает чтение поста: опубликованный пост виден всем,
// неопубликованный только администратору, авторство не учитывается.
func CanView(actor *models.Account, post *models.Post) bool {
	if post.Status == models.PostPublished {
		return true
	}
	return CanListAll(actor)
}
